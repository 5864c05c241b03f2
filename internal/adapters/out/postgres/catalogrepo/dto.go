// Package catalogrepo stores storefront banners and category images.
package catalogrepo

import (
	"time"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BannerDTO is the row layout of the banners table. Linked menu item ids are
// kept as a JSON array in insertion order.
type BannerDTO struct {
	ID            uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	Title         string                         `gorm:"not null"`
	Subtitle      string                         `gorm:"not null;default:''"`
	CTA           string                         `gorm:"column:cta;not null;default:''"`
	Image         string                         `gorm:"not null;default:''"`
	Gradient      string                         `gorm:"not null;default:''"`
	LinkedItemIDs datatypes.JSONSlice[uuid.UUID] `gorm:"not null"`
	CreatedAt     time.Time                      `gorm:"autoCreateTime"`
}

func (BannerDTO) TableName() string {
	return "banners"
}

// CategoryDTO is the row layout of category_images, keyed by category name.
type CategoryDTO struct {
	Category string `gorm:"primaryKey"`
	Image    string `gorm:"not null;default:''"`
	Visible  bool   `gorm:"not null"`
}

func (CategoryDTO) TableName() string {
	return "category_images"
}

func bannerFromDomain(b *catalog.Banner) BannerDTO {
	content := b.Content()
	linked := make(datatypes.JSONSlice[uuid.UUID], 0, len(b.LinkedItemIDs()))
	for _, id := range b.LinkedItemIDs() {
		linked = append(linked, id.Bytes())
	}
	return BannerDTO{
		ID:            b.ID().Bytes(),
		Title:         content.Title,
		Subtitle:      content.Subtitle,
		CTA:           content.CTA,
		Image:         content.Image,
		Gradient:      content.Gradient,
		LinkedItemIDs: linked,
	}
}

func bannerToDomain(dto BannerDTO) (*catalog.Banner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	linked := make([]kernel.UUID, 0, len(dto.LinkedItemIDs))
	for _, raw := range dto.LinkedItemIDs {
		itemID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		linked = append(linked, itemID)
	}

	return catalog.RestoreBanner(id, catalog.BannerContent{
		Title:    dto.Title,
		Subtitle: dto.Subtitle,
		CTA:      dto.CTA,
		Image:    dto.Image,
		Gradient: dto.Gradient,
	}, linked)
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{Category: c.Name(), Image: c.Image(), Visible: c.IsVisible()}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.NewCategory(dto.Category, dto.Image, dto.Visible)
}
