package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
)

// GetMenuQuery lists menu items grouped by category. Customers usually ask for
// available items only; the merchant dashboard shows everything.
type GetMenuQuery struct {
	availableOnly bool
	category      string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates the query. An empty category means every category.
func NewGetMenuQuery(availableOnly bool, category string) GetMenuQuery {
	return GetMenuQuery{availableOnly: availableOnly, category: category, guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

func (q GetMenuQuery) AvailableOnly() bool {
	return q.availableOnly
}

func (q GetMenuQuery) Category() string {
	return q.category
}

// GetMenuItemQuery fetches one menu item.
type GetMenuItemQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(id kernel.UUID) (GetMenuItemQuery, error) {
	if err := id.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

func (q GetMenuItemQuery) ID() kernel.UUID {
	return q.id
}

// MenuItemView is a menu item with its review summary.
// Rating is nil until the item has been reviewed.
type MenuItemView struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         int64
	OriginalPrice *int64
	Image         string
	Category      string
	IsVeg         bool
	Available     bool
	Rating        *float64
	ReviewCount   int
}
