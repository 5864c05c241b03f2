// Package menurepo maps menu items to the menu_items table.
package menurepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO is the row layout of the menu_items table.
type MenuItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null"`
	Description   string    `gorm:"not null;default:''"`
	Price         int64     `gorm:"not null"`
	OriginalPrice *int64
	Image         string `gorm:"not null;default:''"`
	Category      string `gorm:"index;not null"`
	IsVeg         bool   `gorm:"not null"`
	Available     bool   `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	d := item.Details()
	return MenuItemDTO{
		ID:            item.ID().Bytes(),
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Image:         d.Image,
		Category:      d.Category,
		IsVeg:         d.IsVeg,
		Available:     d.Available,
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenuItem(id, menu.Details{
		Name:          dto.Name,
		Description:   dto.Description,
		Price:         dto.Price,
		OriginalPrice: dto.OriginalPrice,
		Image:         dto.Image,
		Category:      dto.Category,
		IsVeg:         dto.IsVeg,
		Available:     dto.Available,
	})
}
