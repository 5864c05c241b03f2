// Package menu provides the MenuItem aggregate managed by the merchant.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem bypassed its constructors.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// Details is the editable content of a menu item. Price and OriginalPrice are
// whole rupees; OriginalPrice is only used to display a discount.
type Details struct {
	Name          string
	Description   string
	Price         int64
	OriginalPrice *int64
	Image         string
	Category      string
	IsVeg         bool
	Available     bool
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	Name          *string
	Description   *string
	Price         *int64
	OriginalPrice *int64
	ClearOriginal bool
	Image         *string
	Category      *string
	IsVeg         *bool
	Available     *bool
}

// MenuItem is something a customer can put in the cart.
// Deleting it never affects orders that already snapshot it.
type MenuItem struct {
	id      kernel.UUID
	details Details

	isConstructed bool
}

// NewMenuItem validates details and creates the item.
func NewMenuItem(id kernel.UUID, details Details) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	details, err := normalize(details)
	if err != nil {
		return nil, err
	}

	return &MenuItem{id: id, details: details, isConstructed: true}, nil
}

// RestoreMenuItem rebuilds an item from storage without re-validating content.
func RestoreMenuItem(id kernel.UUID, details Details) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &MenuItem{id: id, details: details, isConstructed: true}, nil
}

// Validate ensures the item was built by a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Details returns a copy of the item's content.
func (m *MenuItem) Details() Details {
	d := m.details
	if d.OriginalPrice != nil {
		op := *d.OriginalPrice
		d.OriginalPrice = &op
	}
	return d
}

func (m *MenuItem) Name() string {
	return m.details.Name
}

func (m *MenuItem) Price() int64 {
	return m.details.Price
}

func (m *MenuItem) Category() string {
	return m.details.Category
}

func (m *MenuItem) IsAvailable() bool {
	return m.details.Available
}

// Apply merges p into the item. The item is unchanged when the result is invalid.
func (m *MenuItem) Apply(p Patch) error {
	next := m.Details()

	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Price != nil {
		next.Price = *p.Price
	}
	if p.ClearOriginal {
		next.OriginalPrice = nil
	} else if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		next.OriginalPrice = &op
	}
	if p.Image != nil {
		next.Image = *p.Image
	}
	if p.Category != nil {
		next.Category = *p.Category
	}
	if p.IsVeg != nil {
		next.IsVeg = *p.IsVeg
	}
	if p.Available != nil {
		next.Available = *p.Available
	}

	normalized, err := normalize(next)
	if err != nil {
		return err
	}
	m.details = normalized
	return nil
}

func normalize(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.Description = strings.TrimSpace(d.Description)
	d.Image = strings.TrimSpace(d.Image)

	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("name"))
	}
	if d.Category == "" {
		problems = append(problems, errs.NewValueIsRequiredError("category"))
	}
	if d.Price < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", d.Price)))
	}
	if d.OriginalPrice != nil && *d.OriginalPrice < 0 {
		problems = append(problems,
			errs.NewValueIsInvalidErrorWithCause("originalPrice", fmt.Errorf("%d is negative", *d.OriginalPrice)))
	}

	if err := errors.Join(problems...); err != nil {
		return Details{}, err
	}
	return d, nil
}
