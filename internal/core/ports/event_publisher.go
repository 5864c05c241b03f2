package ports

import (
	"context"

	"kitchen/internal/pkg/ddd"
)

// EventPublisher delivers domain events after their transaction committed.
// Delivery is best effort: a failed publish never undoes the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...ddd.DomainEvent) error
}
