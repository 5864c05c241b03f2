package ports

import (
	"context"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
)

// BannerRepository defines the persistence contract for home-screen banners.
type BannerRepository interface {
	Add(ctx context.Context, b *catalog.Banner) error
	Update(ctx context.Context, b *catalog.Banner) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Banner, error)
	List(ctx context.Context) ([]*catalog.Banner, error)
}

// CategoryRepository stores category images and visibility keyed by name.
type CategoryRepository interface {
	// Get returns *errs.ObjectNotFoundError when the category has no row yet.
	Get(ctx context.Context, name string) (*catalog.Category, error)
	// Save inserts or replaces the row for c.Name().
	Save(ctx context.Context, c *catalog.Category) error
	List(ctx context.Context) ([]*catalog.Category, error)
}
