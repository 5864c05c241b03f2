package eventlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/ddd"
)

// DefaultQueueSize is the number of event batches AsyncPublisher buffers
// before it starts dropping.
const DefaultQueueSize = 256

var (
	// ErrQueueFull is returned by AsyncPublisher.Publish when the buffer is full.
	ErrQueueFull = errors.New("event queue is full")
	// ErrPublisherClosed is returned by AsyncPublisher.Publish after Close.
	ErrPublisherClosed = errors.New("event publisher is closed")
)

var _ ports.EventPublisher = (*AsyncPublisher)(nil)

type batch struct {
	ctx    context.Context
	events []ddd.DomainEvent
}

// AsyncPublisher hands event batches to a background worker that delivers
// them to next one batch at a time. Publish never waits on next.
type AsyncPublisher struct {
	next   ports.EventPublisher
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan batch
	done   chan struct{}
}

// NewAsyncPublisher starts the delivery worker. Call Close to drain it.
func NewAsyncPublisher(next ports.EventPublisher, queueSize int, logger *slog.Logger) *AsyncPublisher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &AsyncPublisher{
		next:   next,
		logger: logger.With("component", "events-async"),
		queue:  make(chan batch, queueSize),
		done:   make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues events. The request context is detached from cancellation
// so delivery outlives the request that produced the events.
func (p *AsyncPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- batch{ctx: context.WithoutCancel(ctx), events: events}:
		return nil
	default:
		p.logger.WarnContext(ctx, "event batch dropped", "events", len(events))
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued batches are
// delivered or ctx is done.
func (p *AsyncPublisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *AsyncPublisher) run() {
	defer close(p.done)
	for b := range p.queue {
		if err := p.next.Publish(b.ctx, b.events...); err != nil {
			p.logger.ErrorContext(b.ctx, "async event delivery failed", "events", len(b.events), "error", err)
		}
	}
}
