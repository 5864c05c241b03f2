package services

import (
	"fmt"
	"math"
	"time"

	"kitchen/internal/core/domain/model/storefront"
)

// AvailabilityState is the store's ordering posture at an instant.
type AvailabilityState string

const (
	Open     AvailabilityState = "OPEN"
	PreOrder AvailabilityState = "PRE_ORDER"
	Closed   AvailabilityState = "CLOSED"
)

// PreOrderWindow is how long before opening orders are accepted for deferred preparation.
const PreOrderWindow = 30 * time.Minute

// PreOrderNotice is shown to the customer when an order is accepted in the pre-order window.
const PreOrderNotice = "Shop will start preparing the order in 30 mins."

// Availability is the result of evaluating store hours.
type Availability struct {
	State AvailabilityState
	// NextOpenAt is the next opening instant in the store timezone; nil while open.
	NextOpenAt *time.Time
	// MinutesUntilOpen is rounded up; zero while open.
	MinutesUntilOpen int
	Message          string
}

// AcceptsOrders reports whether carts may grow and checkouts proceed.
func (a Availability) AcceptsOrders() bool {
	return a.State == Open || a.State == PreOrder
}

// AvailabilityEvaluator decides the store's posture from its settings.
//
// Business rules:
//   - isOpen on the settings means OPEN, whatever the clock says; closeTime is display-only
//   - otherwise find the next openTime in the store timezone (today if still ahead, else tomorrow)
//   - 0 < time until that opening <= 30 minutes means PRE_ORDER
//   - anything else is CLOSED, with nextOpenMessage or "Store opens at HH:MM" as the message
type AvailabilityEvaluator struct{}

// NewAvailabilityEvaluator creates the evaluator.
func NewAvailabilityEvaluator() AvailabilityEvaluator {
	return AvailabilityEvaluator{}
}

// Evaluate returns the availability at now.
//
// Example:
//
//	// isOpen=false, openTime=18:00, now=17:45 in the store timezone
//	a, _ := evaluator.Evaluate(settings, now)
//	// a.State == PreOrder, a.MinutesUntilOpen == 15
func (e AvailabilityEvaluator) Evaluate(settings *storefront.Settings, now time.Time) (Availability, error) {
	if err := settings.Validate(); err != nil {
		return Availability{}, err
	}

	if settings.IsOpen() {
		return Availability{State: Open}, nil
	}

	local := now.In(settings.Timezone())
	nextOpen := settings.OpenTime().On(local)
	if local.After(nextOpen) {
		nextOpen = settings.OpenTime().On(local.AddDate(0, 0, 1))
	}

	until := nextOpen.Sub(local)
	minutes := int(math.Ceil(until.Minutes()))

	if until > 0 && until <= PreOrderWindow {
		return Availability{
			State:            PreOrder,
			NextOpenAt:       &nextOpen,
			MinutesUntilOpen: minutes,
			Message:          PreOrderNotice,
		}, nil
	}

	message := settings.NextOpenMessage()
	if message == "" {
		message = fmt.Sprintf("Store opens at %s", settings.OpenTime())
	}

	return Availability{
		State:            Closed,
		NextOpenAt:       &nextOpen,
		MinutesUntilOpen: minutes,
		Message:          message,
	}, nil
}
