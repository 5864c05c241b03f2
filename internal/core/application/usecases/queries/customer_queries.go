package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetCustomersQueryIsNotConstructed = errors.New(
		"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
	)
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
)

// GetCustomersQuery lists every registered customer, newest first.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomerQuery fetches the profile behind a phone number.
type GetCustomerQuery struct {
	phone kernel.Phone
	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(phone kernel.Phone) (GetCustomerQuery, error) {
	if err := phone.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) Phone() kernel.Phone {
	return q.phone
}

// CustomerView is a customer profile. The location pair is either both set or both nil.
type CustomerView struct {
	Phone       string
	Name        string
	Address     string
	LocationLat *float64
	LocationLng *float64
	IsBlocked   bool
	JoinedAt    time.Time
}
