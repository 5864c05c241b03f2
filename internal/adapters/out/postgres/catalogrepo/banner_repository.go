package catalogrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/catalog"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBannerRepository implements ports.BannerRepository using GORM.
type GormBannerRepository struct {
	db *gorm.DB
}

func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

func (r *GormBannerRepository) Add(ctx context.Context, b *catalog.Banner) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := bannerFromDomain(b)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormBannerRepository) Update(ctx context.Context, b *catalog.Banner) error {
	if err := b.Validate(); err != nil {
		return err
	}

	dto := bannerFromDomain(b)
	result := r.db.WithContext(ctx).Model(&BannerDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("banner", b.ID().String())
	}
	return nil
}

func (r *GormBannerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Banner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BannerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("banner", id.String())
		}
		return nil, err
	}
	return bannerToDomain(dto)
}

// List returns banners in the order they were created.
func (r *GormBannerRepository) List(ctx context.Context) ([]*catalog.Banner, error) {
	var dtos []BannerDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	banners := make([]*catalog.Banner, 0, len(dtos))
	for _, dto := range dtos {
		b, err := bannerToDomain(dto)
		if err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, nil
}
