package settingsrepo

import (
	"context"

	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db              *gorm.DB
	defaultTimezone string
}

// NewGormSettingsRepository creates the repository. defaultTimezone is used
// only when the row has to be created; empty means storefront.DefaultTimezone.
func NewGormSettingsRepository(db *gorm.DB, defaultTimezone string) *GormSettingsRepository {
	return &GormSettingsRepository{db: db, defaultTimezone: defaultTimezone}
}

// GetOrCreate inserts the defaults with ON CONFLICT DO NOTHING and then reads
// the row back, so concurrent first calls all end up with the same record.
func (r *GormSettingsRepository) GetOrCreate(ctx context.Context) (*storefront.Settings, error) {
	defaults, err := storefront.DefaultSettings(r.defaultTimezone)
	if err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	seed := fromDomain(defaults)
	if err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return nil, err
	}

	var dto SettingsDTO
	if err = db.First(&dto, "id = ?", storefront.SingletonID).Error; err != nil {
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormSettingsRepository) Update(ctx context.Context, s *storefront.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).Model(&SettingsDTO{}).Where("id = ?", storefront.SingletonID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("settings", storefront.SingletonID)
	}
	return nil
}
