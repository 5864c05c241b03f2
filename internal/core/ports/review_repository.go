package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add inserts a review. A second review for the same order and menu item
	// yields *errs.ConflictError.
	Add(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id kernel.UUID) error
	Exists(ctx context.Context, orderID, menuItemID kernel.UUID) (bool, error)
}
