package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/clock"
	"kitchen/internal/pkg/errs"
)

// GetSettingsQueryHandler returns the public settings view.
type GetSettingsQueryHandler struct {
	settings SettingsReader
}

func NewGetSettingsQueryHandler(settings SettingsReader) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{settings: settings}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (SettingsView, error) {
	if err := query.Validate(); err != nil {
		return SettingsView{}, err
	}

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	return SettingsView{
		StoreName:              s.StoreName(),
		UpiID:                  s.UpiID(),
		DeliveryRadiusKm:       s.DeliveryRadiusKm(),
		LocationLat:            s.Location().Lat(),
		LocationLng:            s.Location().Lng(),
		IsOpen:                 s.IsOpen(),
		OpenTime:               s.OpenTime().String(),
		CloseTime:              s.CloseTime().String(),
		NextOpenMessage:        s.NextOpenMessage(),
		Timezone:               s.TimezoneName(),
		HasMerchantCredentials: s.HasMerchantCredentials(),
	}, nil
}

// EvaluateAvailabilityQueryHandler runs the store-hours rules against the clock.
type EvaluateAvailabilityQueryHandler struct {
	settings  SettingsReader
	clock     clock.Clock
	evaluator services.AvailabilityEvaluator
}

func NewEvaluateAvailabilityQueryHandler(settings SettingsReader, clk clock.Clock) EvaluateAvailabilityQueryHandler {
	return EvaluateAvailabilityQueryHandler{
		settings:  settings,
		clock:     clk,
		evaluator: services.NewAvailabilityEvaluator(),
	}
}

func (h EvaluateAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query EvaluateAvailabilityQuery,
) (services.Availability, error) {
	if err := query.Validate(); err != nil {
		return services.Availability{}, err
	}

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return services.Availability{}, err
	}

	return h.evaluator.Evaluate(s, h.clock.Now())
}

// QuoteCartQueryHandler prices carts without writing anything.
// Cart entries whose menu item is gone are reported in Quote.UnresolvedItemIDs.
type QuoteCartQueryHandler struct {
	settings  SettingsReader
	menu      MenuReader
	customers CustomerReader
	pricing   services.PricingEngine
}

func NewQuoteCartQueryHandler(
	settings SettingsReader,
	menu MenuReader,
	customers CustomerReader,
) QuoteCartQueryHandler {
	return QuoteCartQueryHandler{
		settings:  settings,
		menu:      menu,
		customers: customers,
		pricing:   services.NewPricingEngine(),
	}
}

func (h QuoteCartQueryHandler) Handle(ctx context.Context, query QuoteCartQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return services.Quote{}, err
	}

	location := query.Location()
	if location == nil && query.Phone() != nil {
		buyer, lookupErr := h.customers.Get(ctx, *query.Phone())
		switch {
		case errors.Is(lookupErr, errs.ErrObjectNotFound):
		case lookupErr != nil:
			return services.Quote{}, lookupErr
		default:
			location = buyer.Location()
		}
	}

	items, err := h.menu.ListByIDs(ctx, cartItemIDs(query.Lines()))
	if err != nil {
		return services.Quote{}, err
	}

	return h.pricing.Price(query.Lines(), items, location, s)
}

// CheckEligibilityQueryHandler answers "may this cart action proceed".
//
// A phone with no profile yet is treated as a fresh, unblocked customer
// without a location: it may fill a cart but not check out.
type CheckEligibilityQueryHandler struct {
	settings  SettingsReader
	menu      MenuReader
	customers CustomerReader
	clock     clock.Clock
	pricing   services.PricingEngine
	guard     services.EligibilityGuard
}

func NewCheckEligibilityQueryHandler(
	settings SettingsReader,
	menu MenuReader,
	customers CustomerReader,
	clk clock.Clock,
) CheckEligibilityQueryHandler {
	return CheckEligibilityQueryHandler{
		settings:  settings,
		menu:      menu,
		customers: customers,
		clock:     clk,
		pricing:   services.NewPricingEngine(),
		guard:     services.NewEligibilityGuard(services.NewAvailabilityEvaluator()),
	}
}

// Handle returns the decision, or the rejection as *services.EligibilityError.
// An unknown or switched-off menu item on increment, and unresolvable checkout
// lines, are reported as not found or invalid after the eligibility rules pass.
func (h CheckEligibilityQueryHandler) Handle(
	ctx context.Context,
	query CheckEligibilityQuery,
) (services.Decision, error) {
	if err := query.Validate(); err != nil {
		return services.Decision{}, err
	}
	if query.Action() == services.ActionDecrement {
		return services.Decision{}, nil
	}

	now := h.clock.Now()

	s, err := h.settings.GetOrCreate(ctx)
	if err != nil {
		return services.Decision{}, err
	}

	buyer, err := h.customers.Get(ctx, query.Phone())
	if errors.Is(err, errs.ErrObjectNotFound) {
		buyer, err = customer.NewCustomer(query.Phone(), customer.Profile{}, now)
	}
	if err != nil {
		return services.Decision{}, err
	}

	if query.Action() == services.ActionCheckout {
		return h.checkout(ctx, query, buyer, s, now)
	}

	decision, err := h.guard.Check(services.ActionIncrement, buyer, s, nil, now)
	if err != nil {
		return services.Decision{}, err
	}

	itemID := *query.ItemID()
	items, err := h.menu.ListByIDs(ctx, []kernel.UUID{itemID})
	if err != nil {
		return services.Decision{}, err
	}
	if len(items) == 0 {
		return services.Decision{}, errs.NewObjectNotFoundError("menu item", itemID.String())
	}
	if !items[0].IsAvailable() {
		return services.Decision{}, errs.NewValueIsInvalidErrorWithCause("itemId",
			fmt.Errorf("menu item %s is not available", itemID))
	}

	return decision, nil
}

func (h CheckEligibilityQueryHandler) checkout(
	ctx context.Context,
	query CheckEligibilityQuery,
	buyer *customer.Customer,
	s *storefront.Settings,
	now time.Time,
) (services.Decision, error) {
	items, err := h.menu.ListByIDs(ctx, cartItemIDs(query.Lines()))
	if err != nil {
		return services.Decision{}, err
	}

	quote, err := h.pricing.Price(query.Lines(), items, buyer.Location(), s)
	if err != nil {
		return services.Decision{}, err
	}

	decision, err := h.guard.Check(services.ActionCheckout, buyer, s, &quote, now)
	if err != nil {
		return services.Decision{}, err
	}

	if len(quote.UnresolvedItemIDs) > 0 {
		return services.Decision{}, errs.NewObjectNotFoundError("menu item", quote.UnresolvedItemIDs[0].String())
	}
	if len(quote.UnavailableItemIDs) > 0 {
		return services.Decision{}, errs.NewValueIsInvalidErrorWithCause("items",
			fmt.Errorf("menu item %s is not available", quote.UnavailableItemIDs[0]))
	}

	return decision, nil
}

func cartItemIDs(lines []services.CartLine) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID)
	}
	return ids
}
