// Package sessionrepo stores merchant sessions by the SHA-256 digest of their token.
package sessionrepo

import (
	"time"

	"kitchen/internal/core/domain/model/session"
)

type SessionDTO struct {
	TokenHash string    `gorm:"size:64;primaryKey"`
	Username  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (SessionDTO) TableName() string {
	return "merchant_sessions"
}

func fromDomain(s *session.Session) SessionDTO {
	return SessionDTO{
		TokenHash: s.TokenHash(),
		Username:  s.Username(),
		CreatedAt: s.CreatedAt().UTC(),
		ExpiresAt: s.ExpiresAt().UTC(),
	}
}

func toDomain(dto SessionDTO) *session.Session {
	return session.Restore(dto.TokenHash, dto.Username, dto.CreatedAt, dto.ExpiresAt)
}
