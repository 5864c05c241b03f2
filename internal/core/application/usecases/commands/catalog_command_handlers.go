package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// BannerCommandHandler serves merchant banner edits.
type BannerCommandHandler struct {
	uowFactory BannerUoWFactory
}

func NewBannerCommandHandler(uowFactory BannerUoWFactory) BannerCommandHandler {
	return BannerCommandHandler{uowFactory: uowFactory}
}

func (h BannerCommandHandler) Create(ctx context.Context, cmd CreateBannerCommand) (*catalog.Banner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := catalog.NewBanner(cmd.ID(), cmd.Content())
	if err != nil {
		return nil, err
	}

	err = inTransaction(ctx, h.uowFactory.Create(), func(uow BannerUoW) error {
		return uow.BannerRepository().Add(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (h BannerCommandHandler) Update(ctx context.Context, cmd UpdateBannerCommand) (*catalog.Banner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.modify(ctx, cmd.ID(), func(_ BannerUoW, b *catalog.Banner) error {
		return b.Apply(cmd.Patch())
	})
}

// LinkItem adds a menu item to the banner. The item must exist; linking it
// twice is not an error.
func (h BannerCommandHandler) LinkItem(ctx context.Context, cmd BannerItemCommand) (*catalog.Banner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.modify(ctx, cmd.BannerID(), func(uow BannerUoW, b *catalog.Banner) error {
		if _, err := uow.MenuRepository().Get(ctx, cmd.MenuItemID()); err != nil {
			return err
		}
		b.LinkItem(cmd.MenuItemID())
		return nil
	})
}

// UnlinkItem removes a menu item from the banner. Unlinking an item that is
// not linked, or that was deleted from the menu, is not an error.
func (h BannerCommandHandler) UnlinkItem(ctx context.Context, cmd BannerItemCommand) (*catalog.Banner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.modify(ctx, cmd.BannerID(), func(_ BannerUoW, b *catalog.Banner) error {
		b.UnlinkItem(cmd.MenuItemID())
		return nil
	})
}

// SeedDefaults stores the default banners when there are none at all and
// reports how many were added.
func (h BannerCommandHandler) SeedDefaults(ctx context.Context) (int, error) {
	var added int
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow BannerUoW) error {
		repo := uow.BannerRepository()

		existing, err := repo.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		for _, b := range catalog.DefaultBanners() {
			if err = repo.Add(ctx, b); err != nil {
				return err
			}
			added++
		}
		return nil
	})
	return added, err
}

func (h BannerCommandHandler) modify(
	ctx context.Context,
	id kernel.UUID,
	change func(BannerUoW, *catalog.Banner) error,
) (*catalog.Banner, error) {
	var b *catalog.Banner
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow BannerUoW) error {
		repo := uow.BannerRepository()

		var err error
		b, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err = change(uow, b); err != nil {
			return err
		}
		return repo.Update(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CategoryCommandHandler serves category image and visibility edits.
type CategoryCommandHandler struct {
	uowFactory CategoryUoWFactory
}

func NewCategoryCommandHandler(uowFactory CategoryUoWFactory) CategoryCommandHandler {
	return CategoryCommandHandler{uowFactory: uowFactory}
}

func (h CategoryCommandHandler) SetImage(ctx context.Context, cmd SetCategoryImageCommand) (*catalog.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *catalog.Category
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow CategoryUoW) error {
		repo := uow.CategoryRepository()

		c, err := repo.Get(ctx, cmd.Name())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			visible := cmd.Visible() != nil && *cmd.Visible()
			if c, err = catalog.NewCategory(cmd.Name(), cmd.Image(), visible); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			c.SetImage(cmd.Image())
			if cmd.Visible() != nil {
				c.SetVisible(*cmd.Visible())
			}
		}

		result = c
		return repo.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (h CategoryCommandHandler) Toggle(ctx context.Context, cmd ToggleCategoryCommand) (*catalog.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *catalog.Category
	err := inTransaction(ctx, h.uowFactory.Create(), func(uow CategoryUoW) error {
		repo := uow.CategoryRepository()

		c, err := repo.Get(ctx, cmd.Name())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			if c, err = catalog.NewCategory(cmd.Name(), "", true); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			c.ToggleVisibility()
		}

		result = c
		return repo.Save(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetVisible hides every stored category except the named ones, creating
// rows for names that have none yet.
func (h CategoryCommandHandler) SetVisible(ctx context.Context, cmd SetVisibleCategoriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wanted := make(map[string]struct{})
	for _, n := range cmd.Names() {
		wanted[n] = struct{}{}
	}

	return inTransaction(ctx, h.uowFactory.Create(), func(uow CategoryUoW) error {
		repo := uow.CategoryRepository()

		stored, err := repo.List(ctx)
		if err != nil {
			return err
		}

		for _, c := range stored {
			_, visible := wanted[c.Name()]
			delete(wanted, c.Name())
			if c.IsVisible() == visible {
				continue
			}
			c.SetVisible(visible)
			if err = repo.Save(ctx, c); err != nil {
				return err
			}
		}

		for _, n := range cmd.Names() {
			if _, missing := wanted[n]; !missing {
				continue
			}
			c, err := catalog.NewCategory(n, "", true)
			if err != nil {
				return err
			}
			if err = repo.Save(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
}
