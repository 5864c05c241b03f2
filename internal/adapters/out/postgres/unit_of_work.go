// Package postgres provides the GORM-based Unit of Work over every storefront
// repository, the database opener and the schema migration.
//
// Repositories obtained from a unit of work run inside its transaction once
// Begin has been called, and against the plain connection otherwise. The
// second mode serves read paths that need domain objects but no transaction.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx) // publishes the order's domain events
package postgres

import (
	"context"
	"log/slog"

	"kitchen/internal/adapters/out/postgres/catalogrepo"
	"kitchen/internal/adapters/out/postgres/customerrepo"
	"kitchen/internal/adapters/out/postgres/menurepo"
	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/adapters/out/postgres/reviewrepo"
	"kitchen/internal/adapters/out/postgres/sessionrepo"
	"kitchen/internal/adapters/out/postgres/settingsrepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/ddd"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate changed inside the current transaction.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate ddd.EventSource
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db              *gorm.DB
	publisher       ports.EventPublisher
	logger          *slog.Logger
	defaultTimezone string
}

// NewGormUnitOfWorkFactory creates the factory.
//
// Parameters:
//   - db: the connection pool
//   - publisher: receives the domain events of tracked aggregates after each commit
//   - logger: reports publish failures, which never undo a commit
//   - defaultTimezone: used when the settings row is created on first access
func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	defaultTimezone string,
) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:              db,
		publisher:       publisher,
		logger:          logger,
		defaultTimezone: defaultTimezone,
	}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:              f.db,
		publisher:       f.publisher,
		logger:          f.logger,
		defaultTimezone: f.defaultTimezone,
	}
}

// GormUnitOfWork coordinates one database transaction and the domain events
// raised by the aggregates written in it.
type GormUnitOfWork struct {
	db              *gorm.DB
	tx              *gorm.DB
	publisher       ports.EventPublisher
	logger          *slog.Logger
	defaultTimezone string

	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	uow.trackedAggregates = nil
	return nil
}

// Commit makes the changes permanent and then publishes the events collected
// from tracked aggregates. A failed publish is logged; the commit stands.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = nil
	if err != nil {
		return err
	}

	uow.publish(ctx, tracked)
	return nil
}

// Rollback discards the transaction and every tracked aggregate.
// Without an active transaction it returns gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	return err
}

// TrackAggregate registers an aggregate whose events must be published on commit.
// Outside a transaction there is nothing to commit, so nothing is tracked.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate ddd.EventSource) {
	if uow.tx == nil {
		return
	}
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{ID: id, Aggregate: aggregate})
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) SettingsRepository() ports.SettingsRepository {
	return settingsrepo.NewGormSettingsRepository(uow.conn(), uow.defaultTimezone)
}

func (uow *GormUnitOfWork) BannerRepository() ports.BannerRepository {
	return catalogrepo.NewGormBannerRepository(uow.conn())
}

func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return catalogrepo.NewGormCategoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn())
}

func (uow *GormUnitOfWork) SessionRepository() ports.SessionRepository {
	return sessionrepo.NewGormSessionRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context, tracked []trackedAggregate) {
	if uow.publisher == nil {
		return
	}

	for _, t := range tracked {
		events := t.Aggregate.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		t.Aggregate.ClearDomainEvents()

		if err := uow.publisher.Publish(ctx, events...); err != nil && uow.logger != nil {
			uow.logger.ErrorContext(ctx, "failed to publish domain events",
				"aggregate_id", t.ID.String(),
				"events", len(events),
				"error", err)
		}
	}
}
