// Package review provides customer ratings of items from delivered orders.
package review

import (
	"errors"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

const (
	MinStars = 1
	MaxStars = 5
)

// ErrReviewIsNotConstructed is returned when a Review bypassed its constructors.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

// Review is one customer's rating of one item on one order.
type Review struct {
	id            kernel.UUID
	orderID       kernel.UUID
	menuItemID    kernel.UUID
	customerPhone kernel.Phone
	customerName  string
	stars         int
	comment       string
	createdAt     time.Time

	isConstructed bool
}

// NewReview checks the rating rules against the reviewed order:
//   - stars must be within 1..5 (validation error)
//   - the order must belong to phone, be delivered and contain the item (forbidden)
//
// Uniqueness per order and item is enforced by the caller against storage.
func NewReview(
	id kernel.UUID,
	reviewed *order.Order,
	menuItemID kernel.UUID,
	phone kernel.Phone,
	customerName string,
	stars int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(id.Validate(), menuItemID.Validate(), phone.Validate(), reviewed.Validate()); err != nil {
		return nil, err
	}
	if stars < MinStars || stars > MaxStars {
		return nil, errs.NewValueIsOutOfRangeError("stars", stars, MinStars, MaxStars)
	}
	if !reviewed.BelongsTo(phone) || reviewed.Status() != order.Delivered {
		return nil, errs.NewForbiddenError("can only review delivered orders belonging to you")
	}
	if !reviewed.ContainsMenuItem(menuItemID) {
		return nil, errs.NewForbiddenError("item is not part of this order")
	}

	return &Review{
		id:            id,
		orderID:       reviewed.ID(),
		menuItemID:    menuItemID,
		customerPhone: phone,
		customerName:  strings.TrimSpace(customerName),
		stars:         stars,
		comment:       strings.TrimSpace(comment),
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReview rebuilds a review from storage.
func RestoreReview(
	id, orderID, menuItemID kernel.UUID,
	phone kernel.Phone,
	customerName string,
	stars int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), menuItemID.Validate(), phone.Validate()); err != nil {
		return nil, err
	}
	return &Review{
		id:            id,
		orderID:       orderID,
		menuItemID:    menuItemID,
		customerPhone: phone,
		customerName:  customerName,
		stars:         stars,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the review was built by a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the delivered order the review belongs to.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// MenuItemID returns the reviewed menu item.
func (r *Review) MenuItemID() kernel.UUID {
	return r.menuItemID
}

// CustomerPhone returns the phone of the customer who placed the order.
func (r *Review) CustomerPhone() kernel.Phone {
	return r.customerPhone
}

// CustomerName returns the display name shown next to the review.
func (r *Review) CustomerName() string {
	return r.customerName
}

// Stars returns the rating, between MinStars and MaxStars.
func (r *Review) Stars() int {
	return r.stars
}

// Comment returns the free-text comment, possibly empty.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was written.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
