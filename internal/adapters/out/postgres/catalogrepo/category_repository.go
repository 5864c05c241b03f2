package catalogrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Get(ctx context.Context, name string) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "category = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", name)
		}
		return nil, err
	}
	return categoryToDomain(dto)
}

// Save upserts on the category name.
func (r *GormCategoryRepository) Save(ctx context.Context, c *catalog.Category) error {
	dto := categoryFromDomain(c)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"image", "visible"}),
	}).Create(&dto).Error
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]*catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("category").Find(&dtos).Error; err != nil {
		return nil, err
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := categoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}
