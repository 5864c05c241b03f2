package commands_test

import (
	"math"
	"testing"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/storefront"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func mustPhone(t *testing.T) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	return p
}

// kolkataAt is a wall-clock time on a fixed day in the default store timezone.
func kolkataAt(t *testing.T, hh, mm int) time.Time {
	t.Helper()
	tz, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2025, 3, 1, hh, mm, 0, 0, tz)
}

func mustSettings(t *testing.T, patch storefront.Patch) *storefront.Settings {
	t.Helper()
	s, err := storefront.DefaultSettings("Asia/Kolkata")
	require.NoError(t, err)
	require.NoError(t, s.Apply(patch))
	return s
}

func pointNorthOfStore(t *testing.T, km float64) *kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(28.6139+km/(kernel.EarthRadiusKm*math.Pi/180), 77.2090)
	require.NoError(t, err)
	return &p
}

func mustCustomer(t *testing.T, location *kernel.GeoPoint) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(mustPhone(t), customer.Profile{
		Name:     ptr("Asha"),
		Address:  ptr("12 Janpath, New Delhi"),
		Location: location,
	}, kolkataAt(t, 9, 0))
	require.NoError(t, err)
	return c
}

func mustMenuItem(t *testing.T, name string, price int64) *menu.MenuItem {
	t.Helper()
	m, err := menu.NewMenuItem(kernel.NewUUID(), menu.Details{
		Name: name, Price: price, Category: "Mains", Available: true,
	})
	require.NoError(t, err)
	return m
}

// mustOrderIn builds a stored order already sitting in status.
func mustOrderIn(t *testing.T, status order.Status, menuItemID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(menuItemID, "Paneer Tikka", 1, 100)
	require.NoError(t, err)
	at := kolkataAt(t, 12, 0)
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		order.Recipient{Phone: mustPhone(t), Name: "Asha", Address: "12 Janpath"},
		[]order.Item{item},
		order.Charges{Subtotal: 100, DeliveryFee: 49, PlatformFee: 5, Total: 154},
		status, false, "", at, at,
	)
	require.NoError(t, err)
	return o
}
