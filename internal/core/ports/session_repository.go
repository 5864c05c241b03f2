package ports

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/session"
)

// SessionRepository stores merchant sessions by token digest.
type SessionRepository interface {
	Add(ctx context.Context, s *session.Session) error
	// GetByTokenHash returns *errs.ObjectNotFoundError for unknown digests.
	GetByTokenHash(ctx context.Context, tokenHash string) (*session.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	// DeleteExpired removes sessions whose expiry is at or before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
