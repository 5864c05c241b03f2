package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/session"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// AuthenticateMerchantQueryHandler checks merchant tokens on every protected request.
// Only the SHA-256 of a token is stored, so the lookup hashes first.
type AuthenticateMerchantQueryHandler struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewAuthenticateMerchantQueryHandler(db *gorm.DB, clk clock.Clock) AuthenticateMerchantQueryHandler {
	return AuthenticateMerchantQueryHandler{db: db, clock: clk}
}

// Handle returns the username of a live session, or an *errs.UnauthorizedError
// when the token is unknown or expired.
func (h AuthenticateMerchantQueryHandler) Handle(ctx context.Context, query AuthenticateMerchantQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var username string
	err := h.db.WithContext(ctx).Raw(`
		SELECT username
		FROM merchant_sessions
		WHERE token_hash = ? AND expires_at > ?
	`, session.HashToken(query.Token()), h.clock.Now().UTC()).Row().Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewUnauthorizedError("session expired or unknown")
	}
	if err != nil {
		return "", err
	}

	return username, nil
}
