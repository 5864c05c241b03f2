package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
//
// Domain events raised by aggregates that pass through its repositories are
// published once Commit succeeds and dropped on Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and publishes collected events.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	MenuRepository() MenuRepository
	CustomerRepository() CustomerRepository
	SettingsRepository() SettingsRepository
	BannerRepository() BannerRepository
	CategoryRepository() CategoryRepository
	ReviewRepository() ReviewRepository
	SessionRepository() SessionRepository
}
