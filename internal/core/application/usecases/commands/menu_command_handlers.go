package commands

import (
	"context"

	"kitchen/internal/core/domain/model/menu"
)

// MenuCommandHandler serves every merchant write to the menu.
//
// Example:
//
//	handler := NewMenuCommandHandler(uowFactory)
//	cmd, _ := NewCreateMenuItemCommand(kernel.NewUUID(), menu.Details{
//	    Name: "Paneer Tikka", Price: 180, Category: "Starters", Available: true,
//	})
//	item, err := handler.Create(ctx, cmd)
type MenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewMenuCommandHandler(uowFactory MenuUoWFactory) MenuCommandHandler {
	return MenuCommandHandler{uowFactory: uowFactory}
}

func (h MenuCommandHandler) Create(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(cmd.ID(), cmd.Details())
	if err != nil {
		return nil, err
	}

	err = inTransaction(ctx, h.uowFactory.Create(), func(uow MenuUoW) error {
		return uow.MenuRepository().Add(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (h MenuCommandHandler) Update(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var item *menu.MenuItem
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow MenuUoW) error {
		repo := uow.MenuRepository()

		var err error
		item, err = repo.Get(ctx, cmd.ID())
		if err != nil {
			return err
		}
		if err = item.Apply(cmd.Patch()); err != nil {
			return err
		}
		return repo.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (h MenuCommandHandler) Delete(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow MenuUoW) error {
		return uow.MenuRepository().Delete(ctx, cmd.ID())
	})
}

// Import swaps the whole menu inside one transaction.
func (h MenuCommandHandler) Import(ctx context.Context, cmd ImportMenuCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	items := cmd.Items()
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow MenuUoW) error {
		return uow.MenuRepository().ReplaceAll(ctx, items)
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
