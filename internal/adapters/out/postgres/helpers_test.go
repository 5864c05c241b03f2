package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/ddd"

	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []ddd.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...ddd.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

var placedAt = time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

func mustPhone(t testing.TB, raw string) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone(raw)
	require.NoError(t, err)
	return p
}

func newTestOrder(t testing.TB) *order.Order {
	t.Helper()
	paneer, err := order.NewItem(kernel.NewUUID(), "Paneer Tikka", 2, 100)
	require.NoError(t, err)
	naan, err := order.NewItem(kernel.NewUUID(), "Butter Naan", 1, 50)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.Recipient{Phone: mustPhone(t, "9876543210"), Name: "Asha", Address: "12 Janpath"},
		[]order.Item{paneer, naan},
		order.Charges{Subtotal: 250, DeliveryFee: 49, PlatformFee: 5, Total: 304},
		false,
		"UPI-4411",
		placedAt,
	)
	require.NoError(t, err)
	return o
}

func newTestMenuItem(t testing.TB, name, category string, price int64) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), menu.Details{
		Name: name, Price: price, Category: category, Available: true,
	})
	require.NoError(t, err)
	return item
}

func newTestCustomer(t testing.TB) *customer.Customer {
	t.Helper()
	name, address := "Asha", "12 Janpath"
	c, err := customer.NewCustomer(
		mustPhone(t, "9876543210"),
		customer.Profile{Name: &name, Address: &address},
		placedAt,
	)
	require.NoError(t, err)
	return c
}

func customerProfileWithLocation(loc kernel.GeoPoint) customer.Profile {
	return customer.Profile{Location: &loc}
}
