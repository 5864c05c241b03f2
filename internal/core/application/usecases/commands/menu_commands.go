package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
	ErrImportMenuCommandIsNotConstructed = errors.New(
		"ImportMenuCommand must be created via NewImportMenuCommand constructor",
	)
)

// CreateMenuItemCommand adds one item to the menu. Content rules live in menu.NewMenuItem.
type CreateMenuItemCommand struct {
	id      kernel.UUID
	details menu.Details

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(id kernel.UUID, details menu.Details) (CreateMenuItemCommand, error) {
	if err := id.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{id: id, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// ID returns the id assigned to the new item.
func (c CreateMenuItemCommand) ID() kernel.UUID {
	return c.id
}

// Details returns the item fields.
func (c CreateMenuItemCommand) Details() menu.Details {
	return c.details
}

// UpdateMenuItemCommand patches an existing item.
type UpdateMenuItemCommand struct {
	id    kernel.UUID
	patch menu.Patch

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(id kernel.UUID, patch menu.Patch) (UpdateMenuItemCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{id: id, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ID returns the item to patch.
func (c UpdateMenuItemCommand) ID() kernel.UUID {
	return c.id
}

// Patch returns the fields to change.
func (c UpdateMenuItemCommand) Patch() menu.Patch {
	return c.patch
}

// DeleteMenuItemCommand removes an item for good. Placed orders keep their snapshot.
type DeleteMenuItemCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(id kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := id.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) ID() kernel.UUID {
	return c.id
}

// ImportMenuCommand replaces the whole menu. Every entry is validated up front
// so a bad file leaves the current menu untouched.
type ImportMenuCommand struct {
	items []*menu.MenuItem

	guard guard.ConstructorGuard
}

// NewImportMenuCommand assigns fresh ids to entries and validates them all,
// joining every failure into one error.
func NewImportMenuCommand(entries []menu.Details) (ImportMenuCommand, error) {
	if len(entries) == 0 {
		return ImportMenuCommand{}, errs.NewValueIsRequiredError("menu items")
	}

	items := make([]*menu.MenuItem, 0, len(entries))
	var failures []error
	for _, d := range entries {
		item, err := menu.NewMenuItem(kernel.NewUUID(), d)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(failures...); err != nil {
		return ImportMenuCommand{}, err
	}

	return ImportMenuCommand{items: items, guard: guard.NewConstructorGuard()}, nil
}

func (c ImportMenuCommand) Validate() error {
	return c.guard.Validate(ErrImportMenuCommandIsNotConstructed)
}

func (c ImportMenuCommand) Items() []*menu.MenuItem {
	return append([]*menu.MenuItem(nil), c.items...)
}
