package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
// Deletes are hard; orders keep their own snapshots.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// List returns every item ordered by category then name.
	List(ctx context.Context) ([]*menu.MenuItem, error)

	// ListByIDs returns the items that exist among ids. Missing ids are
	// simply absent from the result.
	ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)

	// ReplaceAll deletes every item and inserts items in their place.
	ReplaceAll(ctx context.Context, items []*menu.MenuItem) error
}
