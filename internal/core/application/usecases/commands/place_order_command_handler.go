package commands

import (
	"context"
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
)

// PlaceOrderResult tells the customer what was accepted.
type PlaceOrderResult struct {
	Order *order.Order
	// Notice is the pre-order message when the store was not yet open.
	Notice string
}

// PlaceOrderCommandHandler turns a cart into a pending_payment order.
//
// Within one transaction it:
//  1. loads the settings (creating defaults on first use) and the customer;
//     an unregistered phone is checked out as a customer with no profile
//  2. prices the cart against the current menu
//  3. runs the checkout eligibility rules
//  4. rejects carts referencing deleted or unavailable items
//  5. snapshots the priced lines into a new order
//
// A rejected checkout writes nothing.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	clock      clock.Clock
	pricing    services.PricingEngine
	guard      services.EligibilityGuard
}

// NewPlaceOrderCommandHandler creates a handler for checkout.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory, clk clock.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		pricing:    services.NewPricingEngine(),
		guard:      services.NewEligibilityGuard(services.NewAvailabilityEvaluator()),
	}
}

// Handle places the order.
//
// Returns:
//   - PlaceOrderResult: the stored order and an optional pre-order notice
//   - error: *services.EligibilityError for business rejections,
//     *errs.ObjectNotFoundError for an unknown menu item,
//     or a storage error
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	settings, err := uow.SettingsRepository().GetOrCreate(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.Phone())
	if errors.Is(err, errs.ErrObjectNotFound) {
		buyer, err = customer.NewCustomer(cmd.Phone(), customer.Profile{}, now)
	}
	if err != nil {
		return PlaceOrderResult{}, err
	}

	lines := cmd.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID)
	}
	menuItems, err := uow.MenuRepository().ListByIDs(ctx, ids)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	quote, err := h.pricing.Price(lines, menuItems, buyer.Location(), settings)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	decision, err := h.guard.Check(services.ActionCheckout, buyer, settings, &quote, now)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if len(quote.UnresolvedItemIDs) > 0 {
		return PlaceOrderResult{}, errs.NewObjectNotFoundError("menu item", quote.UnresolvedItemIDs[0])
	}
	if len(quote.UnavailableItemIDs) > 0 {
		return PlaceOrderResult{}, errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("menu item %s is not available", quote.UnavailableItemIDs[0]))
	}

	items, err := quote.OrderItems()
	if err != nil {
		return PlaceOrderResult{}, err
	}

	address := cmd.Address()
	if address == "" {
		address = buyer.Address()
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		order.Recipient{Phone: buyer.Phone(), Name: buyer.Name(), Address: address},
		items,
		quote.Charges(),
		decision.IsPreOrder,
		cmd.TransactionRef(),
		now,
	)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{Order: placed, Notice: decision.Notice}, nil
}
