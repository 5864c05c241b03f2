package order

import (
	"fmt"
	"slices"

	"kitchen/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Its values are the literal
// strings that are persisted and exchanged over the API.
type Status string

const (
	PendingPayment Status = "pending_payment"
	Preparing      Status = "preparing"
	Ready          Status = "ready"
	OnTheWay       Status = "on_the_way"
	Delivered      Status = "delivered"
	Rejected       Status = "rejected"
	Refunded       Status = "refunded"
)

// transitions is the complete table of legal moves. A status absent from the
// keys, or mapped to an empty slice, is terminal.
var transitions = map[Status][]Status{
	PendingPayment: {Preparing, Rejected},
	Preparing:      {Ready, Refunded},
	Ready:          {OnTheWay, Refunded},
	OnTheWay:       {Delivered, Refunded},
	Delivered:      {Refunded},
	Rejected:       {},
	Refunded:       {},
}

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingPayment, Preparing, Ready, OnTheWay, Delivered, Rejected, Refunded}
}

// ActiveStatuses are the states that still need merchant attention.
func ActiveStatuses() []Status {
	return []Status{PendingPayment, Preparing, Ready, OnTheWay}
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether s is one of the known statuses.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Next returns the statuses reachable from s in one step.
func (s Status) Next() []Status {
	return slices.Clone(transitions[s])
}

// CanTransitionTo reports whether moving from s to target is in the table.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

// TransitionTo returns target when the move is legal and an
// *errs.InvalidTransitionError otherwise. Both ends are validated first.
//
// Example:
//
//	next, err := order.Delivered.TransitionTo(order.Preparing)
//	// next == "", errors.Is(err, errs.ErrInvalidTransition) == true
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if err := target.Validate(); err != nil {
		return "", err
	}
	if !s.CanTransitionTo(target) {
		return "", errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
