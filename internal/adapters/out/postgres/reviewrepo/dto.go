// Package reviewrepo stores customer reviews, one per order and menu item.
package reviewrepo

import (
	"time"

	"kitchen/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_order_item"`
	MenuItemID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_order_item;index"`
	CustomerPhone string    `gorm:"size:16;not null"`
	CustomerName  string    `gorm:"not null;default:''"`
	Stars         int       `gorm:"not null"`
	Comment       string    `gorm:"not null;default:''"`
	CreatedAt     time.Time `gorm:"index;not null"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(r *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:            r.ID().Bytes(),
		OrderID:       r.OrderID().Bytes(),
		MenuItemID:    r.MenuItemID().Bytes(),
		CustomerPhone: r.CustomerPhone().String(),
		CustomerName:  r.CustomerName(),
		Stars:         r.Stars(),
		Comment:       r.Comment(),
		CreatedAt:     r.CreatedAt().UTC(),
	}
}
