// Package ddd holds the small building blocks shared by aggregates:
// an event contract and an embeddable root that buffers raised events
// until the unit of work publishes them.
package ddd

import "time"

// DomainEvent is something that happened to an aggregate and that other
// parts of the system may react to after the change is committed.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// AggregateRoot buffers domain events raised by the embedding aggregate.
type AggregateRoot struct {
	events []DomainEvent
}

// RaiseDomainEvent appends an event to the pending list.
func (a *AggregateRoot) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// GetDomainEvents returns the pending events in the order they were raised.
func (a *AggregateRoot) GetDomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// ClearDomainEvents drops pending events once they have been dispatched.
func (a *AggregateRoot) ClearDomainEvents() {
	a.events = nil
}

// EventSource is implemented by every aggregate that embeds AggregateRoot.
type EventSource interface {
	GetDomainEvents() []DomainEvent
	ClearDomainEvents()
}
