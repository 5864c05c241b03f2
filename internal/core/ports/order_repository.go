package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Item snapshots and charges are written once by Add and never rewritten.
type OrderRepository interface {
	// Add persists a newly placed order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns *errs.ObjectNotFoundError when no order has that id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus stores the aggregate's current status only if the stored
	// status still equals expected. A stored status that moved on in the meantime
	// yields *errs.ConflictError; a missing order yields *errs.ObjectNotFoundError.
	//
	// Example:
	//   previous := o.Status()
	//   if err := o.ChangeStatus(order.Preparing, now); err != nil {
	//       return err
	//   }
	//   err := repo.UpdateStatus(ctx, o, previous)
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error
}
