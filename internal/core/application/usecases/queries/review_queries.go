package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via one of the NewGet...ReviewsQuery constructors",
)

// GetReviewsQuery lists reviews newest first, optionally narrowed to one menu
// item or one order.
type GetReviewsQuery struct {
	menuItemID *kernel.UUID
	orderID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsQuery lists every review.
func NewGetReviewsQuery() GetReviewsQuery {
	return GetReviewsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetItemReviewsQuery lists the reviews of one menu item.
func NewGetItemReviewsQuery(menuItemID kernel.UUID) (GetReviewsQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetReviewsQuery{}, err
	}
	return GetReviewsQuery{menuItemID: &menuItemID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderReviewsQuery lists the reviews left on one order, which tells the
// client which items are still waiting for a rating.
func NewGetOrderReviewsQuery(orderID kernel.UUID) (GetReviewsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetReviewsQuery{}, err
	}
	return GetReviewsQuery{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

func (q GetReviewsQuery) MenuItemID() *kernel.UUID {
	return q.menuItemID
}

func (q GetReviewsQuery) OrderID() *kernel.UUID {
	return q.orderID
}

type ReviewView struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	MenuItemID    kernel.UUID
	CustomerPhone string
	CustomerName  string
	Stars         int
	Comment       string
	CreatedAt     time.Time
}
