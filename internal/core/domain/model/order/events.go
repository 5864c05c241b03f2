package order

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
)

const (
	OrderPlacedEventName        = "order.placed"
	OrderStatusChangedEventName = "order.status_changed"
)

// PlacedEvent is raised once, when a new order is created.
type PlacedEvent struct {
	OrderID       kernel.UUID
	CustomerPhone string
	CustomerName  string
	Address       string
	Items         []Item
	Charges       Charges
	IsPreOrder    bool
	At            time.Time
}

func (e PlacedEvent) EventName() string {
	return OrderPlacedEventName
}

func (e PlacedEvent) OccurredAt() time.Time {
	return e.At
}

// StatusChangedEvent is raised on every accepted transition.
type StatusChangedEvent struct {
	OrderID       kernel.UUID
	CustomerPhone string
	From          Status
	To            Status
	At            time.Time
}

func (e StatusChangedEvent) EventName() string {
	return OrderStatusChangedEventName
}

func (e StatusChangedEvent) OccurredAt() time.Time {
	return e.At
}
