package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetBannersQueryIsNotConstructed = errors.New(
		"GetBannersQuery must be created via NewGetBannersQuery constructor",
	)
	ErrGetCategoriesQueryIsNotConstructed = errors.New(
		"GetCategoriesQuery must be created via NewGetCategoriesQuery constructor",
	)
)

// GetBannersQuery lists home-screen banners in creation order.
type GetBannersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBannersQuery() GetBannersQuery {
	return GetBannersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBannersQuery) Validate() error {
	return q.guard.Validate(ErrGetBannersQueryIsNotConstructed)
}

// BannerView is a banner with the menu items it promotes.
type BannerView struct {
	ID            kernel.UUID
	Title         string
	Subtitle      string
	CTA           string
	Image         string
	Gradient      string
	LinkedItemIDs []kernel.UUID
}

// GetCategoriesQuery lists categories known from the menu or from a stored image.
// With visibleOnly it returns the home-screen carousel.
type GetCategoriesQuery struct {
	visibleOnly bool
	guard       guard.ConstructorGuard
}

func NewGetCategoriesQuery(visibleOnly bool) GetCategoriesQuery {
	return GetCategoriesQuery{visibleOnly: visibleOnly, guard: guard.NewConstructorGuard()}
}

func (q GetCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoriesQueryIsNotConstructed)
}

func (q GetCategoriesQuery) VisibleOnly() bool {
	return q.visibleOnly
}

// CategoryView describes one category. A category without a stored image row
// is hidden and has an empty image.
type CategoryView struct {
	Name      string
	Image     string
	Visible   bool
	ItemCount int
}
