package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrUpsertCustomerCommandIsNotConstructed = errors.New(
		"UpsertCustomerCommand must be created via NewUpsertCustomerCommand constructor",
	)
	ErrToggleCustomerBlockCommandIsNotConstructed = errors.New(
		"ToggleCustomerBlockCommand must be created via NewToggleCustomerBlockCommand constructor",
	)
)

// UpsertCustomerCommand registers a verified phone or fills in its profile.
// Fields absent from the profile never overwrite stored values.
type UpsertCustomerCommand struct {
	phone   kernel.Phone
	profile customer.Profile

	guard guard.ConstructorGuard
}

func NewUpsertCustomerCommand(phone kernel.Phone, profile customer.Profile) (UpsertCustomerCommand, error) {
	if err := phone.Validate(); err != nil {
		return UpsertCustomerCommand{}, err
	}
	return UpsertCustomerCommand{phone: phone, profile: profile, guard: guard.NewConstructorGuard()}, nil
}

func (c UpsertCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpsertCustomerCommandIsNotConstructed)
}

// Phone returns the customer key.
func (c UpsertCustomerCommand) Phone() kernel.Phone {
	return c.phone
}

// Profile returns the fields to set; empty fields keep their stored value.
func (c UpsertCustomerCommand) Profile() customer.Profile {
	return c.profile
}

// ToggleCustomerBlockCommand flips the blocked flag of a customer.
type ToggleCustomerBlockCommand struct {
	phone kernel.Phone

	guard guard.ConstructorGuard
}

func NewToggleCustomerBlockCommand(phone kernel.Phone) (ToggleCustomerBlockCommand, error) {
	if err := phone.Validate(); err != nil {
		return ToggleCustomerBlockCommand{}, err
	}
	return ToggleCustomerBlockCommand{phone: phone, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleCustomerBlockCommand) Validate() error {
	return c.guard.Validate(ErrToggleCustomerBlockCommandIsNotConstructed)
}

func (c ToggleCustomerBlockCommand) Phone() kernel.Phone {
	return c.phone
}
