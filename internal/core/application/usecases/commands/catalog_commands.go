package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateBannerCommandIsNotConstructed = errors.New(
		"CreateBannerCommand must be created via NewCreateBannerCommand constructor",
	)
	ErrUpdateBannerCommandIsNotConstructed = errors.New(
		"UpdateBannerCommand must be created via NewUpdateBannerCommand constructor",
	)
	ErrBannerItemCommandIsNotConstructed = errors.New(
		"BannerItemCommand must be created via NewBannerItemCommand constructor",
	)
	ErrSetCategoryImageCommandIsNotConstructed = errors.New(
		"SetCategoryImageCommand must be created via NewSetCategoryImageCommand constructor",
	)
	ErrToggleCategoryCommandIsNotConstructed = errors.New(
		"ToggleCategoryCommand must be created via NewToggleCategoryCommand constructor",
	)
	ErrSetVisibleCategoriesCommandIsNotConstructed = errors.New(
		"SetVisibleCategoriesCommand must be created via NewSetVisibleCategoriesCommand constructor",
	)
)

type CreateBannerCommand struct {
	id      kernel.UUID
	content catalog.BannerContent

	guard guard.ConstructorGuard
}

func NewCreateBannerCommand(id kernel.UUID, content catalog.BannerContent) (CreateBannerCommand, error) {
	if err := id.Validate(); err != nil {
		return CreateBannerCommand{}, err
	}
	return CreateBannerCommand{id: id, content: content, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateBannerCommand) Validate() error {
	return c.guard.Validate(ErrCreateBannerCommandIsNotConstructed)
}

// ID returns the id the new banner will be stored under.
func (c CreateBannerCommand) ID() kernel.UUID {
	return c.id
}

// Content returns the banner fields.
func (c CreateBannerCommand) Content() catalog.BannerContent {
	return c.content
}

type UpdateBannerCommand struct {
	id    kernel.UUID
	patch catalog.BannerPatch

	guard guard.ConstructorGuard
}

func NewUpdateBannerCommand(id kernel.UUID, patch catalog.BannerPatch) (UpdateBannerCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateBannerCommand{}, err
	}
	return UpdateBannerCommand{id: id, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateBannerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBannerCommandIsNotConstructed)
}

// ID returns the banner to change.
func (c UpdateBannerCommand) ID() kernel.UUID {
	return c.id
}

// Patch returns the fields to overwrite.
func (c UpdateBannerCommand) Patch() catalog.BannerPatch {
	return c.patch
}

// BannerItemCommand links or unlinks one menu item on a banner.
type BannerItemCommand struct {
	bannerID   kernel.UUID
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBannerItemCommand(bannerID, menuItemID kernel.UUID) (BannerItemCommand, error) {
	if err := errors.Join(bannerID.Validate(), menuItemID.Validate()); err != nil {
		return BannerItemCommand{}, err
	}
	return BannerItemCommand{bannerID: bannerID, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c BannerItemCommand) Validate() error {
	return c.guard.Validate(ErrBannerItemCommandIsNotConstructed)
}

// BannerID returns the banner whose linked items change.
func (c BannerItemCommand) BannerID() kernel.UUID {
	return c.bannerID
}

// MenuItemID returns the menu item to link or unlink.
func (c BannerItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// SetCategoryImageCommand sets the carousel image of a category.
// A nil visible keeps the current flag; new rows start hidden.
type SetCategoryImageCommand struct {
	name    string
	image   string
	visible *bool

	guard guard.ConstructorGuard
}

func NewSetCategoryImageCommand(name, image string, visible *bool) (SetCategoryImageCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SetCategoryImageCommand{}, errs.NewValueIsRequiredError("category")
	}
	return SetCategoryImageCommand{
		name:    name,
		image:   strings.TrimSpace(image),
		visible: visible,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetCategoryImageCommand) Validate() error {
	return c.guard.Validate(ErrSetCategoryImageCommandIsNotConstructed)
}

// Name returns the category key.
func (c SetCategoryImageCommand) Name() string {
	return c.name
}

// Image returns the image URL.
func (c SetCategoryImageCommand) Image() string {
	return c.image
}

// Visible returns the requested visibility, or nil to keep the current one.
func (c SetCategoryImageCommand) Visible() *bool {
	return c.visible
}

// ToggleCategoryCommand flips visibility; an unknown category is created visible.
type ToggleCategoryCommand struct {
	name string

	guard guard.ConstructorGuard
}

func NewToggleCategoryCommand(name string) (ToggleCategoryCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ToggleCategoryCommand{}, errs.NewValueIsRequiredError("category")
	}
	return ToggleCategoryCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleCategoryCommand) Validate() error {
	return c.guard.Validate(ErrToggleCategoryCommandIsNotConstructed)
}

func (c ToggleCategoryCommand) Name() string {
	return c.name
}

// SetVisibleCategoriesCommand makes exactly the named categories visible.
type SetVisibleCategoriesCommand struct {
	names []string

	guard guard.ConstructorGuard
}

// NewSetVisibleCategoriesCommand trims names and drops blanks and duplicates.
// An empty list is allowed and hides every category.
func NewSetVisibleCategoriesCommand(names []string) SetVisibleCategoriesCommand {
	seen := make(map[string]struct{}, len(names))
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		cleaned = append(cleaned, n)
	}
	return SetVisibleCategoriesCommand{names: cleaned, guard: guard.NewConstructorGuard()}
}

func (c SetVisibleCategoriesCommand) Validate() error {
	return c.guard.Validate(ErrSetVisibleCategoriesCommandIsNotConstructed)
}

func (c SetVisibleCategoriesCommand) Names() []string {
	return append([]string(nil), c.names...)
}
