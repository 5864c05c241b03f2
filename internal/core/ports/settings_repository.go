package ports

import (
	"context"

	"kitchen/internal/core/domain/model/storefront"
)

// SettingsRepository stores the single storefront settings record.
type SettingsRepository interface {
	// GetOrCreate returns the stored settings, inserting storefront defaults
	// first when none exist. Concurrent first calls never produce a second record.
	GetOrCreate(ctx context.Context) (*storefront.Settings, error)
	Update(ctx context.Context, s *storefront.Settings) error
}
