package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
)

// CustomerCommandHandler serves customer registration, profile edits and blocking.
type CustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      clock.Clock
}

func NewCustomerCommandHandler(uowFactory CustomerUoWFactory, clk clock.Clock) CustomerCommandHandler {
	return CustomerCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Upsert creates the customer on first sight and patches the profile afterwards.
// Two first sightings racing each other both succeed: the loser of the insert
// retries once as an update.
func (h CustomerCommandHandler) Upsert(ctx context.Context, cmd UpsertCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := h.upsert(ctx, cmd)
	if errors.Is(err, errs.ErrConcurrentModified) {
		c, err = h.upsert(ctx, cmd)
	}
	return c, err
}

func (h CustomerCommandHandler) upsert(ctx context.Context, cmd UpsertCustomerCommand) (*customer.Customer, error) {
	var result *customer.Customer
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow CustomerUoW) error {
		repo := uow.CustomerRepository()

		existing, err := repo.Get(ctx, cmd.Phone())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			created, createErr := customer.NewCustomer(cmd.Phone(), cmd.Profile(), h.clock.Now())
			if createErr != nil {
				return createErr
			}
			result = created
			return repo.Add(ctx, created)
		case err != nil:
			return err
		}

		existing.ApplyProfile(cmd.Profile())
		result = existing
		return repo.Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleBlock flips the flag and returns the new blocked state.
func (h CustomerCommandHandler) ToggleBlock(ctx context.Context, cmd ToggleCustomerBlockCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var blocked bool
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow CustomerUoW) error {
		repo := uow.CustomerRepository()

		c, err := repo.Get(ctx, cmd.Phone())
		if err != nil {
			return err
		}
		blocked = c.ToggleBlock()
		return repo.Update(ctx, c)
	})
	return blocked, err
}
