package customerrepo

import (
	"context"
	"errors"

	"kitchen/internal/adapters/out/postgres/dberr"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add inserts a first-time customer. Losing a race against another first
// sighting of the same phone returns *errs.ConflictError.
func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return errs.NewConflictError("customer", dto.Phone, "phone already registered")
		}
		return err
	}
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("phone = ?", dto.Phone).
		Select("*").Omit("phone", "joined_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.Phone)
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "phone = ?", phone.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", phone.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
