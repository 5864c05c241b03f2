package queries

import (
	"context"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/storefront"
)

// Readers are the slices of the repositories that rule-backed queries need.
// The repositories handed out by a unit of work that was never begun satisfy them.
type (
	SettingsReader interface {
		GetOrCreate(ctx context.Context) (*storefront.Settings, error)
	}

	MenuReader interface {
		ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
	}

	CustomerReader interface {
		Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
	}
)
