package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/review"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateReviewCommandIsNotConstructed = errors.New(
		"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
	)
	ErrDeleteReviewCommandIsNotConstructed = errors.New(
		"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
	)
)

// CreateReviewCommand is a customer rating one item of a delivered order.
// Star bounds are checked by review.NewReview so that the message is uniform.
type CreateReviewCommand struct {
	id         kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	phone      kernel.Phone
	stars      int
	comment    string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	id, orderID, menuItemID kernel.UUID,
	phone kernel.Phone,
	stars int,
	comment string,
) (CreateReviewCommand, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), menuItemID.Validate(), phone.Validate()); err != nil {
		return CreateReviewCommand{}, err
	}
	return CreateReviewCommand{
		id:         id,
		orderID:    orderID,
		menuItemID: menuItemID,
		phone:      phone,
		stars:      stars,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

type DeleteReviewCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewCommand(id kernel.UUID) (DeleteReviewCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteReviewCommand{}, err
	}
	return DeleteReviewCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewCommandHandler serves review creation by customers and deletion by the merchant.
type ReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	clock      clock.Clock
}

func NewReviewCommandHandler(uowFactory ReviewUoWFactory, clk clock.Clock) ReviewCommandHandler {
	return ReviewCommandHandler{uowFactory: uowFactory, clock: clk}
}

// Create stores a review after checking the order it refers to.
//
// Returns:
//   - *errs.ObjectNotFoundError for an unknown order
//   - *errs.ForbiddenError when the order is not the caller's, not delivered, or lacks the item
//   - *errs.ConflictError when this order item was already reviewed
func (h ReviewCommandHandler) Create(ctx context.Context, cmd CreateReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var created *review.Review
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow ReviewUoW) error {
		reviewed, err := uow.OrderRepository().Get(ctx, cmd.orderID)
		if err != nil {
			return err
		}

		name := reviewed.Recipient().Name
		if c, getErr := uow.CustomerRepository().Get(ctx, cmd.phone); getErr == nil && c.Name() != "" {
			name = c.Name()
		} else if getErr != nil && !errors.Is(getErr, errs.ErrObjectNotFound) {
			return getErr
		}

		created, err = review.NewReview(
			cmd.id, reviewed, cmd.menuItemID, cmd.phone, name, cmd.stars, cmd.comment, h.clock.Now(),
		)
		if err != nil {
			return err
		}

		repo := uow.ReviewRepository()
		exists, err := repo.Exists(ctx, cmd.orderID, cmd.menuItemID)
		if err != nil {
			return err
		}
		if exists {
			return errs.NewConflictError("review", cmd.orderID, "this item was already reviewed")
		}

		return repo.Add(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (h ReviewCommandHandler) Delete(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow ReviewUoW) error {
		return uow.ReviewRepository().Delete(ctx, cmd.id)
	})
}
