package menurepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites every column, including clearing OriginalPrice.
func (r *GormMenuRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", item.ID().String())
	}
	return nil
}

// Delete removes the item. Orders keep their own snapshot of it.
func (r *GormMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormMenuRepository) List(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormMenuRepository) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	if len(ids) == 0 {
		return []*menu.MenuItem{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// ReplaceAll swaps the whole menu. Run it inside a transaction so readers
// never observe an empty menu.
func (r *GormMenuRepository) ReplaceAll(ctx context.Context, items []*menu.MenuItem) error {
	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(item))
	}

	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&MenuItemDTO{}).Error; err != nil {
		return err
	}
	if len(dtos) == 0 {
		return nil
	}
	return db.CreateInBatches(&dtos, 100).Error
}

func toDomainList(dtos []MenuItemDTO) ([]*menu.MenuItem, error) {
	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
