package queries

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
	ErrEvaluateAvailabilityQueryIsNotConstructed = errors.New(
		"EvaluateAvailabilityQuery must be created via NewEvaluateAvailabilityQuery constructor",
	)
	ErrQuoteCartQueryIsNotConstructed = errors.New(
		"QuoteCartQuery must be created via NewQuoteCartQuery constructor",
	)
	ErrCheckEligibilityQueryIsNotConstructed = errors.New(
		"CheckEligibilityQuery must be created via NewCheckEligibilityQuery constructor",
	)
)

// GetSettingsQuery reads the public store settings. The first read ever creates
// the defaults.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// SettingsView is what anyone may see of the settings; merchant credentials
// never leave the server.
type SettingsView struct {
	StoreName              string
	UpiID                  string
	DeliveryRadiusKm       float64
	LocationLat            float64
	LocationLng            float64
	IsOpen                 bool
	OpenTime               string
	CloseTime              string
	NextOpenMessage        string
	Timezone               string
	HasMerchantCredentials bool
}

// EvaluateAvailabilityQuery asks whether the store takes orders right now.
type EvaluateAvailabilityQuery struct {
	guard guard.ConstructorGuard
}

func NewEvaluateAvailabilityQuery() EvaluateAvailabilityQuery {
	return EvaluateAvailabilityQuery{guard: guard.NewConstructorGuard()}
}

func (q EvaluateAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrEvaluateAvailabilityQueryIsNotConstructed)
}

// QuoteCartQuery prices a cart.
//
// The delivery point is resolved in this order: an explicit location, the
// location on the profile of phone, or unknown.
//
// Example:
//
//	query, err := NewQuoteCartQuery([]services.CartLine{{MenuItemID: id, Quantity: 2}}, &phone, nil)
//	quote, err := handler.Handle(ctx, query)
//	fmt.Println(quote.Total)
type QuoteCartQuery struct {
	lines    []services.CartLine
	phone    *kernel.Phone
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewQuoteCartQuery validates the lines; phone and location are optional.
func NewQuoteCartQuery(lines []services.CartLine, phone *kernel.Phone, location *kernel.GeoPoint) (QuoteCartQuery, error) {
	if err := validateCartLines(lines); err != nil {
		return QuoteCartQuery{}, err
	}
	if phone != nil {
		if err := phone.Validate(); err != nil {
			return QuoteCartQuery{}, err
		}
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return QuoteCartQuery{}, err
		}
	}

	return QuoteCartQuery{
		lines:    lines,
		phone:    phone,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteCartQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCartQueryIsNotConstructed)
}

func (q QuoteCartQuery) Lines() []services.CartLine {
	return q.lines
}

func (q QuoteCartQuery) Phone() *kernel.Phone {
	return q.phone
}

func (q QuoteCartQuery) Location() *kernel.GeoPoint {
	return q.location
}

// CheckEligibilityQuery gates a cart action before the client applies it.
//
// Increment needs the menu item being added. Checkout needs the whole cart so
// that the delivery range can be checked against a real quote. Decrement needs
// nothing and is always allowed.
type CheckEligibilityQuery struct {
	phone  kernel.Phone
	action services.Action
	itemID *kernel.UUID
	lines  []services.CartLine

	guard guard.ConstructorGuard
}

func NewCheckEligibilityQuery(
	phone kernel.Phone,
	action services.Action,
	itemID *kernel.UUID,
	lines []services.CartLine,
) (CheckEligibilityQuery, error) {
	if _, err := services.ParseAction(string(action)); err != nil {
		return CheckEligibilityQuery{}, err
	}
	if err := phone.Validate(); err != nil {
		return CheckEligibilityQuery{}, err
	}

	switch action {
	case services.ActionIncrement:
		if itemID == nil {
			return CheckEligibilityQuery{}, errs.NewValueIsRequiredError("itemId")
		}
		if err := itemID.Validate(); err != nil {
			return CheckEligibilityQuery{}, err
		}
	case services.ActionCheckout:
		if err := validateCartLines(lines); err != nil {
			return CheckEligibilityQuery{}, err
		}
	}

	return CheckEligibilityQuery{
		phone:  phone,
		action: action,
		itemID: itemID,
		lines:  lines,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q CheckEligibilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckEligibilityQueryIsNotConstructed)
}

func (q CheckEligibilityQuery) Phone() kernel.Phone {
	return q.phone
}

func (q CheckEligibilityQuery) Action() services.Action {
	return q.action
}

func (q CheckEligibilityQuery) ItemID() *kernel.UUID {
	return q.itemID
}

func (q CheckEligibilityQuery) Lines() []services.CartLine {
	return q.lines
}

func validateCartLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, l := range lines {
		if err := l.MenuItemID.Validate(); err != nil {
			return err
		}
		if l.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", l.Quantity))
		}
	}
	return nil
}
