package ports

import (
	"context"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers keyed by phone.
type CustomerRepository interface {
	// Add inserts a new customer. A phone that is already registered yields
	// *errs.ConflictError so callers can retry as an update.
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
}
