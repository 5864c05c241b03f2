package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one frozen line of an order: the menu item as it was when the
// customer checked out. Renaming or repricing the menu item afterwards
// has no effect on it.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	name       string
	quantity   int
	price      int64

	guard guard.ConstructorGuard
}

// NewItem snapshots a menu item line.
//
// Parameters:
//   - menuItemID: identifier of the menu item at order time
//   - name: display name at order time (required)
//   - quantity: number of units, at least 1
//   - price: unit price in whole rupees, not negative
func NewItem(menuItemID kernel.UUID, name string, quantity int, price int64) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the item was built by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the snapshotted display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the snapshotted unit price.
func (i Item) Price() int64 {
	return i.price
}

// LineTotal returns price × quantity.
func (i Item) LineTotal() int64 {
	return i.price * int64(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}
