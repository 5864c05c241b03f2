// Package customerrepo maps customers to the customers table, keyed by phone.
package customerrepo

import (
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
)

type CustomerDTO struct {
	Phone       string `gorm:"size:16;primaryKey"`
	Name        string `gorm:"not null;default:''"`
	Address     string `gorm:"not null;default:''"`
	LocationLat *float64
	LocationLng *float64
	IsBlocked   bool      `gorm:"not null"`
	JoinedAt    time.Time `gorm:"index;not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		Phone:     c.Phone().String(),
		Name:      c.Name(),
		Address:   c.Address(),
		IsBlocked: c.IsBlocked(),
		JoinedAt:  c.JoinedAt().UTC(),
	}
	if loc := c.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.LocationLat = &lat
		dto.LocationLng = &lng
	}
	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	location, err := kernel.NewOptionalGeoPoint(dto.LocationLat, dto.LocationLng)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(phone, dto.Name, dto.Address, location, dto.IsBlocked, dto.JoinedAt)
}
