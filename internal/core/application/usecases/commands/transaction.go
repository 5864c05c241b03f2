package commands

import "context"

// inTransaction runs fn between Begin and Commit on uow. Any failure leaves the
// deferred Rollback to discard the work; after a successful Commit the rollback
// is a no-op error that is ignored.
func inTransaction[U TxManager](ctx context.Context, uow U, fn func(U) error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
