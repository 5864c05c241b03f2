// Package eventlog records committed domain events in the application log and
// forwards them to any downstream publishers.
package eventlog

import (
	"context"
	"errors"
	"log/slog"

	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/ddd"
)

var _ ports.EventPublisher = (*Publisher)(nil)

type Publisher struct {
	logger *slog.Logger
	next   []ports.EventPublisher
}

// NewPublisher logs every event and then hands the batch to next, in order.
// Nil entries in next are ignored.
func NewPublisher(logger *slog.Logger, next ...ports.EventPublisher) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}

	downstream := make([]ports.EventPublisher, 0, len(next))
	for _, p := range next {
		if p != nil {
			downstream = append(downstream, p)
		}
	}

	return &Publisher{logger: logger.With("component", "events"), next: downstream}
}

// Publish never stops at the first failing downstream publisher; all failures
// are joined into the returned error.
func (p *Publisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", event.EventName(),
			"occurred_at", event.OccurredAt(),
		)
	}

	var failures []error
	for _, next := range p.next {
		if err := next.Publish(ctx, events...); err != nil {
			p.logger.ErrorContext(ctx, "event delivery failed", "error", err)
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
