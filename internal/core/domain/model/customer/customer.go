// Package customer provides the Customer aggregate keyed by phone number.
package customer

import (
	"errors"
	"strings"
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when a Customer bypassed its constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Profile is an upsert payload. Nil pointers and blank strings mean
// "not supplied" and never overwrite stored values.
type Profile struct {
	Name     *string
	Address  *string
	Location *kernel.GeoPoint
}

// Customer is a person identified by a verified phone number.
//
// Invariants:
//   - The phone never changes after creation
//   - Applying a profile only fills in the fields it carries
//   - Blocking is a flag flip and does not touch the profile
type Customer struct {
	phone     kernel.Phone
	name      string
	address   string
	location  *kernel.GeoPoint
	isBlocked bool
	joinedAt  time.Time

	isConstructed bool
}

// NewCustomer registers a phone with an optional initial profile.
func NewCustomer(phone kernel.Phone, profile Profile, joinedAt time.Time) (*Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	c := &Customer{phone: phone, joinedAt: joinedAt, isConstructed: true}
	c.ApplyProfile(profile)
	return c, nil
}

// RestoreCustomer rebuilds a customer from storage.
func RestoreCustomer(
	phone kernel.Phone,
	name, address string,
	location *kernel.GeoPoint,
	isBlocked bool,
	joinedAt time.Time,
) (*Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}
	return &Customer{
		phone:         phone,
		name:          name,
		address:       address,
		location:      location,
		isBlocked:     isBlocked,
		joinedAt:      joinedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the customer was built by a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}

// Location returns the registered delivery point, or nil when unknown.
func (c *Customer) Location() *kernel.GeoPoint {
	if c.location == nil {
		return nil
	}
	l := *c.location
	return &l
}

// HasLocation reports whether a delivery point is registered.
func (c *Customer) HasLocation() bool {
	return c.location != nil
}

func (c *Customer) IsBlocked() bool {
	return c.isBlocked
}

func (c *Customer) JoinedAt() time.Time {
	return c.joinedAt
}

// ApplyProfile fills in the supplied, non-blank fields.
func (c *Customer) ApplyProfile(p Profile) {
	if v, ok := supplied(p.Name); ok {
		c.name = v
	}
	if v, ok := supplied(p.Address); ok {
		c.address = v
	}
	if p.Location != nil && p.Location.Validate() == nil {
		l := *p.Location
		c.location = &l
	}
}

// ToggleBlock flips the blocked flag and returns the new value.
func (c *Customer) ToggleBlock() bool {
	c.isBlocked = !c.isBlocked
	return c.isBlocked
}

func supplied(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*v)
	return trimmed, trimmed != ""
}
