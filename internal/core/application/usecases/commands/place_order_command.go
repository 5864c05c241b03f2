package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCartIsEmpty = errs.NewValueIsRequiredError("items")
)

// PlaceOrderCommand is a customer's checkout request.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, phone, []services.CartLine{
//	    {MenuItemID: paneerID, Quantity: 2},
//	}, "", "")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, clock.NewSystem())
//	result, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	phone          kernel.Phone
	lines          []services.CartLine
	address        string
	transactionRef string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand builds a checkout command.
// An empty address means "deliver to the address on the customer profile".
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	phone kernel.Phone,
	lines []services.CartLine,
	address string,
	transactionRef string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		address:        strings.TrimSpace(address),
		transactionRef: strings.TrimSpace(transactionRef),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPhone(phone),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Lines returns a copy of the requested cart.
func (c PlaceOrderCommand) Lines() []services.CartLine {
	return append([]services.CartLine(nil), c.lines...)
}

func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c PlaceOrderCommand) TransactionRef() string {
	return c.transactionRef
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}
	c.lines = append([]services.CartLine(nil), lines...)
	return nil
}
