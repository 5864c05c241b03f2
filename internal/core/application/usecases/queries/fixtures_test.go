package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "kitchen/internal/adapters/out/postgres"
	"kitchen/internal/adapters/out/postgres/dbtest"
	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/storefront"
	"kitchen/internal/core/ports"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// storeLat/storeLng is the default store location.
const (
	storeLat = 28.6139
	storeLng = 77.2090
	// kmPerDegreeLat is close enough for the distances used here.
	kmPerDegreeLat = 111.195
)

// openDatabase returns a migrated SQLite database and a unit of work bound to it
// without a transaction, which is how the query side reads domain objects.
func openDatabase(t *testing.T) (*gorm.DB, ports.UnitOfWork) {
	t.Helper()
	db := dbtest.SQLite(t)
	return db, postgres_adapter.NewGormUnitOfWorkFactory(db, nil, nil, "Asia/Kolkata").Create()
}

func mustPhone(t testing.TB, raw string) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone(raw)
	require.NoError(t, err)
	return p
}

func mustPoint(t testing.TB, kmNorthOfStore float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(storeLat+kmNorthOfStore/kmPerDegreeLat, storeLng)
	require.NoError(t, err)
	return p
}

func mustMenuItem(t testing.TB, name, category string, price int64, available bool) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), menu.Details{
		Name: name, Price: price, Category: category, Available: available,
	})
	require.NoError(t, err)
	return item
}

func mustCustomer(t testing.TB, phone string, location *kernel.GeoPoint) *customer.Customer {
	t.Helper()
	name, address := "Asha", "12 Janpath"
	c, err := customer.NewCustomer(mustPhone(t, phone),
		customer.Profile{Name: &name, Address: &address, Location: location}, baseTime)
	require.NoError(t, err)
	return c
}

// mustOrder places an order for phone at the given time and walks it to status.
func mustOrder(t testing.TB, phone string, at time.Time, status order.Status, lines ...*menu.MenuItem) *order.Order {
	t.Helper()

	items := make([]order.Item, 0, len(lines))
	var subtotal int64
	for _, m := range lines {
		item, err := order.NewItem(m.ID(), m.Name(), 1, m.Price())
		require.NoError(t, err)
		items = append(items, item)
		subtotal += m.Price()
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.Recipient{Phone: mustPhone(t, phone), Name: "Asha", Address: "12 Janpath"},
		items,
		order.Charges{Subtotal: subtotal, DeliveryFee: 49, PlatformFee: 5, Total: subtotal + 54},
		false,
		"",
		at,
	)
	require.NoError(t, err)

	path := map[order.Status][]order.Status{
		order.PendingPayment: nil,
		order.Preparing:      {order.Preparing},
		order.OnTheWay:       {order.Preparing, order.Ready, order.OnTheWay},
		order.Delivered:      {order.Preparing, order.Ready, order.OnTheWay, order.Delivered},
		order.Rejected:       {order.Rejected},
		order.Refunded:       {order.Preparing, order.Refunded},
	}
	steps, ok := path[status]
	require.True(t, ok, "no fixture path to %s", status)
	for _, s := range steps {
		require.NoError(t, o.ChangeStatus(s, at))
	}
	return o
}

func mustSettings(t testing.TB, patch storefront.Patch) *storefront.Settings {
	t.Helper()
	s, err := storefront.DefaultSettings("Asia/Kolkata")
	require.NoError(t, err)
	require.NoError(t, s.Apply(patch))
	return s
}

func ptr[T any](v T) *T {
	return &v
}

func addAll[T any](t testing.TB, add func(context.Context, T) error, values ...T) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, add(context.Background(), v))
	}
}
