// Package commands contains business operations that modify storefront state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"kitchen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches, which keeps its mocks small.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	BannerRepoFactory interface {
		BannerRepository() ports.BannerRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// PlaceOrderUoW spans everything checkout reads and the order it writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   settings, err := uow.SettingsRepository().GetOrCreate(ctx)
	//   buyer, err := uow.CustomerRepository().Get(ctx, phone)
	//   // ... price, check eligibility, build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		CustomerRepoFactory
		SettingsRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	SettingsUoWFactory interface {
		Create() SettingsUoW
	}

	// BannerUoW can also read the menu so links always point at real items.
	BannerUoW interface {
		TxManager
		BannerRepoFactory
		MenuRepoFactory
	}

	BannerUoWFactory interface {
		Create() BannerUoW
	}

	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// ReviewUoW reads the reviewed order and the reviewer's profile.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
		CustomerRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// SessionUoW checks credentials stored on the settings record.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
		SettingsRepoFactory
	}

	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
