package sessionrepo

import (
	"context"
	"errors"
	"time"

	"kitchen/internal/core/domain/model/session"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Add(ctx context.Context, s *session.Session) error {
	dto := fromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*session.Session, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", "token")
		}
		return nil, err
	}
	return toDomain(dto), nil
}

// Delete is idempotent: an unknown digest is not an error.
func (r *GormSessionRepository) Delete(ctx context.Context, tokenHash string) error {
	return r.db.WithContext(ctx).Delete(&SessionDTO{}, "token_hash = ?", tokenHash).Error
}

func (r *GormSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&SessionDTO{}, "expires_at <= ?", now.UTC())
	return result.RowsAffected, result.Error
}
