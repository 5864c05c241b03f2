package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/ddd"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created without lines.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Recipient identifies who the order is for and where it goes.
// Name and address are copied at placement and never follow later profile edits.
type Recipient struct {
	Phone   kernel.Phone
	Name    string
	Address string
}

// Order is the aggregate root for a customer's purchase.
//
// Order follows these invariants:
//   - Must have a valid identifier generated on the server
//   - Must have at least one item, and the item snapshot never changes
//   - Charges.Subtotal equals the sum of item line totals, and Charges.Total adds up
//   - Status changes follow the transition table in status.go
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	ddd.AggregateRoot

	id             kernel.UUID
	recipient      Recipient
	items          []Item
	charges        Charges
	status         Status
	isPreOrder     bool
	transactionRef string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder creates an order in pending_payment and raises a PlacedEvent.
//
// Parameters:
//   - id: server-generated identifier
//   - recipient: customer phone, name and delivery address (address required)
//   - items: the frozen cart lines, at least one
//   - charges: the quote the customer accepted
//   - isPreOrder: true when the store was in its pre-order window
//   - transactionRef: optional payment reference (UPI transaction id), may be empty
//   - createdAt: placement instant
//
// Returns:
//   - *Order: the new order
//   - error: joined validation errors
//
// Example:
//
//	item, _ := order.NewItem(menuItemID, "Paneer Tikka", 2, 100)
//	o, err := order.NewOrder(kernel.NewUUID(), recipient, []order.Item{item},
//	    order.Charges{Subtotal: 200, DeliveryFee: 49, PlatformFee: 5, Total: 254},
//	    false, "", clock.Now())
func NewOrder(
	id kernel.UUID,
	recipient Recipient,
	items []Item,
	charges Charges,
	isPreOrder bool,
	transactionRef string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:         PendingPayment,
		isPreOrder:     isPreOrder,
		transactionRef: strings.TrimSpace(transactionRef),
		createdAt:      createdAt,
		updatedAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRecipient(recipient),
		o.setItems(items),
		o.setCharges(charges),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.RaiseDomainEvent(PlacedEvent{
		OrderID:       o.id,
		CustomerPhone: o.recipient.Phone.String(),
		CustomerName:  o.recipient.Name,
		Address:       o.recipient.Address,
		Items:         o.Items(),
		Charges:       o.charges,
		IsPreOrder:    o.isPreOrder,
		At:            createdAt,
	})

	return o, nil
}

// RestoreOrder rebuilds an order from storage. No events are raised and the
// charges are trusted as stored, since they were checked at placement.
func RestoreOrder(
	id kernel.UUID,
	recipient Recipient,
	items []Item,
	charges Charges,
	status Status,
	isPreOrder bool,
	transactionRef string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(id.Validate(), recipient.Phone.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		recipient:      recipient,
		items:          slices.Clone(items),
		charges:        charges,
		status:         status,
		isPreOrder:     isPreOrder,
		transactionRef: transactionRef,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Recipient returns the phone, name and address captured at placement.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Items returns a copy of the item snapshot.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Charges returns the frozen price breakdown.
func (o *Order) Charges() Charges {
	return o.charges
}

// Total is shorthand for Charges().Total.
func (o *Order) Total() int64 {
	return o.charges.Total
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// IsPreOrder reports whether the order was accepted during the pre-order window.
func (o *Order) IsPreOrder() bool {
	return o.isPreOrder
}

// TransactionRef returns the payment reference supplied at checkout, if any.
func (o *Order) TransactionRef() string {
	return o.transactionRef
}

// CreatedAt returns the placement instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ContainsMenuItem reports whether the snapshot has a line for menuItemID.
func (o *Order) ContainsMenuItem(menuItemID kernel.UUID) bool {
	return slices.ContainsFunc(o.items, func(i Item) bool {
		return i.menuItemID.IsEqual(menuItemID)
	})
}

// BelongsTo reports whether the order was placed by phone.
func (o *Order) BelongsTo(phone kernel.Phone) bool {
	return o.recipient.Phone.IsEqual(phone)
}

// ChangeStatus moves the order to target when the transition table allows it
// and raises a StatusChangedEvent.
//
// Returns:
//   - nil on success
//   - *errs.InvalidTransitionError when the move is not in the table
//   - a validation error when target is not a known status
func (o *Order) ChangeStatus(target Status, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = next
	o.updatedAt = at

	o.RaiseDomainEvent(StatusChangedEvent{
		OrderID:       o.id,
		CustomerPhone: o.recipient.Phone.String(),
		From:          previous,
		To:            next,
		At:            at,
	})
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRecipient(r Recipient) error {
	if err := r.Phone.Validate(); err != nil {
		return err
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	if r.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.recipient = r
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

// setCharges must run after setItems.
func (o *Order) setCharges(c Charges) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var subtotal int64
	for _, item := range o.items {
		subtotal += item.LineTotal()
	}
	if len(o.items) > 0 && subtotal != c.Subtotal {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%d does not match item lines totalling %d", c.Subtotal, subtotal),
		)
	}

	o.charges = c
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
