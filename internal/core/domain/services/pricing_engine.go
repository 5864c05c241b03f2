package services

import (
	"fmt"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/pkg/errs"
)

const (
	// FreeDeliveryThreshold: subtotals strictly above it ship free.
	FreeDeliveryThreshold int64 = 999
	// NearDeliveryFee applies up to NearDistanceKm, and when the customer location is unknown.
	NearDeliveryFee int64 = 49
	// FarDeliveryFee applies beyond NearDistanceKm but inside the delivery radius.
	FarDeliveryFee int64 = 99
	// PlatformFee is charged on every order.
	PlatformFee int64 = 5
	// NearDistanceKm splits the two fee tiers. It is independent of the delivery radius.
	NearDistanceKm = 5.0
)

// CartLine is what the client sends: a menu item and a quantity of at least 1.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PricedLine is a cart line resolved against the current menu.
type PricedLine struct {
	MenuItemID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  int64
	LineTotal  int64
}

// Quote is the full price breakdown for a cart.
type Quote struct {
	Lines       []PricedLine
	Subtotal    int64
	DeliveryFee int64
	PlatformFee int64
	Total       int64
	// DistanceKm is nil when the customer location is unknown.
	DistanceKm   *float64
	IsOutOfRange bool
	// UnresolvedItemIDs are cart ids that no longer exist on the menu.
	UnresolvedItemIDs []kernel.UUID
	// UnavailableItemIDs exist on the menu but are switched off.
	UnavailableItemIDs []kernel.UUID
}

// Charges converts the quote into the breakdown frozen on an order.
func (q Quote) Charges() order.Charges {
	return order.Charges{
		Subtotal:    q.Subtotal,
		DeliveryFee: q.DeliveryFee,
		PlatformFee: q.PlatformFee,
		Total:       q.Total,
	}
}

// OrderItems snapshots the priced lines for a new order.
func (q Quote) OrderItems() ([]order.Item, error) {
	items := make([]order.Item, 0, len(q.Lines))
	for _, l := range q.Lines {
		item, err := order.NewItem(l.MenuItemID, l.Name, l.Quantity, l.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// PricingEngine computes quotes. It is deterministic for identical inputs and
// works purely in integer rupees.
type PricingEngine struct{}

// NewPricingEngine creates the engine.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price resolves cart against menuItems and prices it.
//
// Parameters:
//   - cart: client lines; repeated ids are merged, quantities must be >= 1
//   - menuItems: the current menu (any superset of the cart ids)
//   - customerLocation: the delivery point, or nil when unknown
//   - settings: store location and delivery radius
//
// Algorithm:
//  1. subtotal = sum of price × quantity over resolved lines
//  2. distance = haversine(customer, store) when the customer location is known
//  3. out of range = distance known and distance > radius
//  4. delivery fee = 0 when out of range; 0 when subtotal > 999; 49 within 5 km;
//     99 beyond 5 km; 49 when the location is unknown
//  5. total = subtotal + delivery fee + platform fee (5)
func (e PricingEngine) Price(
	cart []CartLine,
	menuItems []*menu.MenuItem,
	customerLocation *kernel.GeoPoint,
	settings *storefront.Settings,
) (Quote, error) {
	if err := settings.Validate(); err != nil {
		return Quote{}, err
	}

	merged, err := mergeCart(cart)
	if err != nil {
		return Quote{}, err
	}

	byID := make(map[kernel.UUID]*menu.MenuItem, len(menuItems))
	for _, m := range menuItems {
		byID[m.ID()] = m
	}

	q := Quote{Lines: make([]PricedLine, 0, len(merged)), PlatformFee: PlatformFee}
	for _, line := range merged {
		item, ok := byID[line.MenuItemID]
		if !ok {
			q.UnresolvedItemIDs = append(q.UnresolvedItemIDs, line.MenuItemID)
			continue
		}
		if !item.IsAvailable() {
			q.UnavailableItemIDs = append(q.UnavailableItemIDs, line.MenuItemID)
		}
		lineTotal := item.Price() * int64(line.Quantity)
		q.Lines = append(q.Lines, PricedLine{
			MenuItemID: line.MenuItemID,
			Name:       item.Name(),
			Quantity:   line.Quantity,
			UnitPrice:  item.Price(),
			LineTotal:  lineTotal,
		})
		q.Subtotal += lineTotal
	}

	if customerLocation != nil {
		d := customerLocation.DistanceKm(settings.Location())
		q.DistanceKm = &d
		q.IsOutOfRange = d > settings.DeliveryRadiusKm()
	}

	q.DeliveryFee = deliveryFee(q.Subtotal, q.DistanceKm, q.IsOutOfRange)
	q.Total = q.Subtotal + q.DeliveryFee + q.PlatformFee
	return q, nil
}

func deliveryFee(subtotal int64, distanceKm *float64, outOfRange bool) int64 {
	switch {
	case outOfRange:
		return 0
	case subtotal > FreeDeliveryThreshold:
		return 0
	case distanceKm == nil:
		return NearDeliveryFee
	case *distanceKm <= NearDistanceKm:
		return NearDeliveryFee
	default:
		return FarDeliveryFee
	}
}

// mergeCart folds repeated ids into one line, keeping first-seen order.
func mergeCart(cart []CartLine) ([]CartLine, error) {
	merged := make([]CartLine, 0, len(cart))
	index := make(map[kernel.UUID]int, len(cart))

	for _, line := range cart {
		if err := line.MenuItemID.Validate(); err != nil {
			return nil, err
		}
		if line.Quantity < 1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", line.Quantity))
		}
		if i, ok := index[line.MenuItemID]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.MenuItemID] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}
