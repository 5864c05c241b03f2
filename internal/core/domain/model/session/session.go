// Package session models merchant login sessions.
//
// The bearer token is only ever known to the client. Storage keeps its SHA-256
// digest together with an expiry, so a leaked table does not grant access and
// sessions survive restarts.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"kitchen/internal/pkg/errs"
)

const tokenBytes = 32

// Session is an issued merchant credential.
type Session struct {
	tokenHash string
	username  string
	createdAt time.Time
	expiresAt time.Time
}

// Issue creates a session valid for ttl and returns it with the plaintext token.
func Issue(username string, now time.Time, ttl time.Duration) (*Session, string, error) {
	if username == "" {
		return nil, "", errs.NewValueIsRequiredError("username")
	}
	if ttl <= 0 {
		return nil, "", errs.NewValueIsInvalidError("session ttl")
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", err
	}
	token := hex.EncodeToString(raw)

	return &Session{
		tokenHash: HashToken(token),
		username:  username,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, token, nil
}

// Restore rebuilds a session from storage.
func Restore(tokenHash, username string, createdAt, expiresAt time.Time) *Session {
	return &Session{tokenHash: tokenHash, username: username, createdAt: createdAt, expiresAt: expiresAt}
}

// HashToken is the lookup key for a plaintext token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Session) TokenHash() string {
	return s.tokenHash
}

func (s *Session) Username() string {
	return s.username
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether now is at or past the expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}
