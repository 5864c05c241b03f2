package reviewrepo

import (
	"context"
	"errors"

	"kitchen/internal/adapters/out/postgres/dberr"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/review"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Add inserts the review. The unique index on (order_id, menu_item_id) turns a
// concurrent duplicate into *errs.ConflictError.
func (r *GormReviewRepository) Add(ctx context.Context, rv *review.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewConflictError("review", rv.OrderID().String(), "this item was already reviewed")
		}
		return err
	}
	return nil
}

func (r *GormReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReviewDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", id.String())
	}
	return nil
}

func (r *GormReviewRepository) Exists(ctx context.Context, orderID, menuItemID kernel.UUID) (bool, error) {
	if err := errors.Join(orderID.Validate(), menuItemID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("order_id = ? AND menu_item_id = ?", orderID.Bytes(), menuItemID.Bytes()).
		Count(&count).Error
	return count > 0, err
}
