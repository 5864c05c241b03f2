package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/clock"
)

// TransitionOrderCommandHandler applies merchant status changes.
//
// The stored status is compared and swapped in one statement, so two merchants
// acting on the same order cannot both win: the slower one gets a conflict
// instead of silently overwriting.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle moves the order and returns it in its new state.
//
// Returns:
//   - *errs.ObjectNotFoundError when the order does not exist
//   - *errs.InvalidTransitionError when the move is not allowed from the current status
//   - *errs.ConflictError when another change landed first
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := o.Status()
	if err = o.ChangeStatus(cmd.Target(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, previous); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
