// Package settingsrepo stores the single store_settings row.
package settingsrepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/storefront"
)

// SettingsDTO is the row layout of store_settings. ID is always storefront.SingletonID.
type SettingsDTO struct {
	ID                   int     `gorm:"primaryKey;autoIncrement:false"`
	StoreName            string  `gorm:"not null"`
	UpiID                string  `gorm:"not null;default:''"`
	DeliveryRadiusKm     float64 `gorm:"not null"`
	LocationLat          float64 `gorm:"not null"`
	LocationLng          float64 `gorm:"not null"`
	IsOpen               bool    `gorm:"not null"`
	OpenTime             string  `gorm:"size:5;not null"`
	CloseTime            string  `gorm:"size:5;not null"`
	NextOpenMessage      string  `gorm:"not null;default:''"`
	Timezone             string  `gorm:"not null"`
	MerchantUsername     string  `gorm:"not null;default:''"`
	MerchantPasswordHash string  `gorm:"not null;default:''"`
}

func (SettingsDTO) TableName() string {
	return "store_settings"
}

func fromDomain(s *storefront.Settings) SettingsDTO {
	username, hash := s.Credentials()
	return SettingsDTO{
		ID:                   storefront.SingletonID,
		StoreName:            s.StoreName(),
		UpiID:                s.UpiID(),
		DeliveryRadiusKm:     s.DeliveryRadiusKm(),
		LocationLat:          s.Location().Lat(),
		LocationLng:          s.Location().Lng(),
		IsOpen:               s.IsOpen(),
		OpenTime:             s.OpenTime().String(),
		CloseTime:            s.CloseTime().String(),
		NextOpenMessage:      s.NextOpenMessage(),
		Timezone:             s.TimezoneName(),
		MerchantUsername:     username,
		MerchantPasswordHash: hash,
	}
}

func toDomain(dto SettingsDTO) (*storefront.Settings, error) {
	location, err := kernel.NewGeoPoint(dto.LocationLat, dto.LocationLng)
	if err != nil {
		return nil, err
	}
	return storefront.RestoreSettings(
		dto.StoreName, dto.UpiID,
		dto.DeliveryRadiusKm,
		location,
		dto.IsOpen,
		dto.OpenTime, dto.CloseTime, dto.NextOpenMessage, dto.Timezone,
		dto.MerchantUsername, dto.MerchantPasswordHash,
	)
}
