package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/pkg/errs"
)

// Reason is a machine-readable rejection code surfaced to clients.
type Reason string

const (
	ReasonAccountBlocked     Reason = "ACCOUNT_BLOCKED"
	ReasonStoreClosed        Reason = "STORE_CLOSED"
	ReasonLocationRequired   Reason = "LOCATION_REQUIRED"
	ReasonOutOfDeliveryRange Reason = "OUT_OF_DELIVERY_RANGE"
)

var (
	ErrAccountBlocked     = errors.New("account blocked")
	ErrStoreClosed        = errors.New("store closed")
	ErrLocationRequired   = errors.New("location required")
	ErrOutOfDeliveryRange = errors.New("out of delivery range")
)

// EligibilityError is a recoverable rejection with a human-readable message.
// It unwraps to the sentinel matching its Reason.
type EligibilityError struct {
	Reason  Reason
	Message string
}

func newEligibilityError(reason Reason, message string) *EligibilityError {
	return &EligibilityError{Reason: reason, Message: message}
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

func (e *EligibilityError) Unwrap() error {
	switch e.Reason {
	case ReasonAccountBlocked:
		return ErrAccountBlocked
	case ReasonStoreClosed:
		return ErrStoreClosed
	case ReasonLocationRequired:
		return ErrLocationRequired
	case ReasonOutOfDeliveryRange:
		return ErrOutOfDeliveryRange
	default:
		return nil
	}
}

// Action is the cart operation being gated.
type Action string

const (
	ActionIncrement Action = "increment"
	ActionDecrement Action = "decrement"
	ActionCheckout  Action = "checkout"
)

// ParseAction converts a wire value into an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionIncrement, ActionDecrement, ActionCheckout:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a cart action", s))
	}
}

// Decision is a successful gate outcome.
type Decision struct {
	Availability Availability
	// IsPreOrder is set when the store is inside its pre-order window.
	IsPreOrder bool
	Notice     string
}

// EligibilityGuard decides whether a cart action may proceed.
//
// Rules, in order:
//  1. decrement is always allowed
//  2. a blocked account is rejected with ACCOUNT_BLOCKED
//  3. a CLOSED store is rejected with STORE_CLOSED; PRE_ORDER is allowed and flagged
//  4. at checkout only: no registered location is LOCATION_REQUIRED, and a quote
//     out of range is OUT_OF_DELIVERY_RANGE citing distance and radius
type EligibilityGuard struct {
	availability AvailabilityEvaluator
}

// NewEligibilityGuard creates a guard that consults evaluator for store hours.
func NewEligibilityGuard(evaluator AvailabilityEvaluator) EligibilityGuard {
	return EligibilityGuard{availability: evaluator}
}

// Check applies the rules. quote is only consulted for ActionCheckout and may be nil otherwise.
//
// Returns:
//   - Decision: availability and pre-order flag when allowed
//   - error: *EligibilityError for business rejections, or a validation error
func (g EligibilityGuard) Check(
	action Action,
	c *customer.Customer,
	settings *storefront.Settings,
	quote *Quote,
	now time.Time,
) (Decision, error) {
	if action == ActionDecrement {
		return Decision{}, nil
	}
	if err := c.Validate(); err != nil {
		return Decision{}, err
	}

	if c.IsBlocked() {
		return Decision{}, newEligibilityError(ReasonAccountBlocked,
			"Your account has been restricted. Please contact support.")
	}

	availability, err := g.availability.Evaluate(settings, now)
	if err != nil {
		return Decision{}, err
	}
	if !availability.AcceptsOrders() {
		return Decision{}, newEligibilityError(ReasonStoreClosed, availability.Message)
	}

	decision := Decision{Availability: availability}
	if availability.State == PreOrder {
		decision.IsPreOrder = true
		decision.Notice = PreOrderNotice
	}

	if action != ActionCheckout {
		return decision, nil
	}

	if !c.HasLocation() {
		return Decision{}, newEligibilityError(ReasonLocationRequired,
			"Please complete your profile to set delivery location.")
	}
	if quote == nil {
		return Decision{}, errs.NewValueIsRequiredError("quote")
	}
	if quote.IsOutOfRange {
		distance := 0.0
		if quote.DistanceKm != nil {
			distance = *quote.DistanceKm
		}
		return Decision{}, newEligibilityError(ReasonOutOfDeliveryRange, fmt.Sprintf(
			"Your location is %.1f km away. We deliver within %s km only.",
			distance, strconv.FormatFloat(settings.DeliveryRadiusKm(), 'f', -1, 64),
		))
	}

	return decision, nil
}
