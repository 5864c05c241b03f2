package storefront

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // opening hours must resolve zones on hosts without a zoneinfo database

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// SingletonID is the well-known key of the only settings record.
const SingletonID = 1

// DefaultTimezone pins opening hours when nothing else is configured.
const DefaultTimezone = "Asia/Kolkata"

var (
	// ErrSettingsIsNotConstructed is returned when Settings bypassed its constructors.
	ErrSettingsIsNotConstructed = errors.New("Settings must be created via DefaultSettings constructor")

	defaultLocationLat = 28.6139
	defaultLocationLng = 77.2090
)

// Patch is a merchant edit of the settings; nil fields are left unchanged.
// Credentials are not patchable here.
type Patch struct {
	StoreName        *string
	UpiID            *string
	DeliveryRadiusKm *float64
	LocationLat      *float64
	LocationLng      *float64
	IsOpen           *bool
	OpenTime         *string
	CloseTime        *string
	NextOpenMessage  *string
	Timezone         *string
}

// Settings is the merchant's store configuration.
//
// Invariants:
//   - DeliveryRadiusKm is positive
//   - OpenTime and CloseTime are valid "HH:MM" values
//   - Timezone is a loadable IANA name
//   - Merchant credentials are only exposed through Credentials()
type Settings struct {
	storeName        string
	upiID            string
	deliveryRadiusKm float64
	location         kernel.GeoPoint
	isOpen           bool
	openTime         TimeOfDay
	closeTime        TimeOfDay
	nextOpenMessage  string
	timezone         *time.Location

	merchantUsername     string
	merchantPasswordHash string

	isConstructed bool
}

// DefaultSettings returns the record created on first access.
// An empty timezone falls back to DefaultTimezone.
//
// Defaults: store "Monisha Kitchen", radius 5 km, location 28.6139/77.2090,
// open, hours 10:00 to 22:00, no next-open message, no merchant credentials.
func DefaultSettings(timezone string) (*Settings, error) {
	if strings.TrimSpace(timezone) == "" {
		timezone = DefaultTimezone
	}
	tz, err := loadTimezone(timezone)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewGeoPoint(defaultLocationLat, defaultLocationLng)
	if err != nil {
		return nil, err
	}

	return &Settings{
		storeName:        "Monisha Kitchen",
		deliveryRadiusKm: 5,
		location:         loc,
		isOpen:           true,
		openTime:         MustParseTimeOfDay("10:00"),
		closeTime:        MustParseTimeOfDay("22:00"),
		timezone:         tz,
		isConstructed:    true,
	}, nil
}

// RestoreSettings rebuilds the record from storage.
func RestoreSettings(
	storeName, upiID string,
	deliveryRadiusKm float64,
	location kernel.GeoPoint,
	isOpen bool,
	openTime, closeTime, nextOpenMessage, timezone string,
	merchantUsername, merchantPasswordHash string,
) (*Settings, error) {
	open, openErr := ParseTimeOfDay(openTime)
	closing, closeErr := ParseTimeOfDay(closeTime)
	tz, tzErr := loadTimezone(timezone)
	if err := errors.Join(location.Validate(), openErr, closeErr, tzErr); err != nil {
		return nil, err
	}

	return &Settings{
		storeName:            storeName,
		upiID:                upiID,
		deliveryRadiusKm:     deliveryRadiusKm,
		location:             location,
		isOpen:               isOpen,
		openTime:             open,
		closeTime:            closing,
		nextOpenMessage:      nextOpenMessage,
		timezone:             tz,
		merchantUsername:     merchantUsername,
		merchantPasswordHash: merchantPasswordHash,
		isConstructed:        true,
	}, nil
}

// Validate ensures the settings were built by a constructor.
func (s *Settings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettingsIsNotConstructed
	}
	return nil
}

// StoreName returns the name shown to customers.
func (s *Settings) StoreName() string {
	return s.storeName
}

// UpiID returns the UPI address customers pay to.
func (s *Settings) UpiID() string {
	return s.upiID
}

// DeliveryRadiusKm returns the maximum delivery distance in kilometres.
func (s *Settings) DeliveryRadiusKm() float64 {
	return s.deliveryRadiusKm
}

// Location returns the store's coordinates.
func (s *Settings) Location() kernel.GeoPoint {
	return s.location
}

// IsOpen reports the merchant's open switch.
func (s *Settings) IsOpen() bool {
	return s.isOpen
}

// OpenTime returns the daily opening time in the store timezone.
func (s *Settings) OpenTime() TimeOfDay {
	return s.openTime
}

// CloseTime returns the advertised closing time. It is informational only.
func (s *Settings) CloseTime() TimeOfDay {
	return s.closeTime
}

// NextOpenMessage returns the custom closed-store message, possibly empty.
func (s *Settings) NextOpenMessage() string {
	return s.nextOpenMessage
}

// Timezone returns the location opening hours are evaluated in.
func (s *Settings) Timezone() *time.Location {
	return s.timezone
}

// TimezoneName returns the IANA name of Timezone.
func (s *Settings) TimezoneName() string {
	return s.timezone.String()
}

func (s *Settings) HasMerchantCredentials() bool {
	return s.merchantUsername != "" && s.merchantPasswordHash != ""
}

// Credentials returns the merchant username and password hash.
func (s *Settings) Credentials() (username, passwordHash string) {
	return s.merchantUsername, s.merchantPasswordHash
}

// SetCredentials stores a username with an already hashed password.
func (s *Settings) SetCredentials(username, passwordHash string) error {
	username = strings.TrimSpace(username)
	if err := errors.Join(
		requireText("merchant username", username),
		requireText("merchant password", passwordHash),
	); err != nil {
		return err
	}
	s.merchantUsername = username
	s.merchantPasswordHash = passwordHash
	return nil
}

// Apply validates p in full and then merges it; a failing patch changes nothing.
func (s *Settings) Apply(p Patch) error {
	next := *s
	var problems []error

	if p.StoreName != nil {
		name := strings.TrimSpace(*p.StoreName)
		if err := requireText("store name", name); err != nil {
			problems = append(problems, err)
		}
		next.storeName = name
	}
	if p.UpiID != nil {
		next.upiID = strings.TrimSpace(*p.UpiID)
	}
	if p.DeliveryRadiusKm != nil {
		if !(*p.DeliveryRadiusKm > 0) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"deliveryRadiusKm", fmt.Errorf("%v is not positive", *p.DeliveryRadiusKm)))
		}
		next.deliveryRadiusKm = *p.DeliveryRadiusKm
	}
	if p.LocationLat != nil || p.LocationLng != nil {
		lat, lng := s.location.Lat(), s.location.Lng()
		if p.LocationLat != nil {
			lat = *p.LocationLat
		}
		if p.LocationLng != nil {
			lng = *p.LocationLng
		}
		loc, err := kernel.NewGeoPoint(lat, lng)
		if err != nil {
			problems = append(problems, err)
		}
		next.location = loc
	}
	if p.IsOpen != nil {
		next.isOpen = *p.IsOpen
	}
	if p.OpenTime != nil {
		t, err := ParseTimeOfDay(*p.OpenTime)
		if err != nil {
			problems = append(problems, err)
		}
		next.openTime = t
	}
	if p.CloseTime != nil {
		t, err := ParseTimeOfDay(*p.CloseTime)
		if err != nil {
			problems = append(problems, err)
		}
		next.closeTime = t
	}
	if p.NextOpenMessage != nil {
		next.nextOpenMessage = strings.TrimSpace(*p.NextOpenMessage)
	}
	if p.Timezone != nil {
		tz, err := loadTimezone(*p.Timezone)
		if err != nil {
			problems = append(problems, err)
		}
		next.timezone = tz
	}

	if err := errors.Join(problems...); err != nil {
		return err
	}
	*s = next
	return nil
}

func loadTimezone(name string) (*time.Location, error) {
	tz, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil || strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("timezone", fmt.Errorf("%q is not an IANA timezone", name))
	}
	return tz, nil
}

func requireText(param, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
