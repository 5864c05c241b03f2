package services_test

import (
	"math"
	"testing"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/core/domain/model/storefront"

	"github.com/stretchr/testify/require"
)

const (
	storeLat = 28.6139
	storeLng = 77.2090
)

func ptr[T any](v T) *T { return &v }

// pointNorthOfStore returns a point exactly km kilometres due north of the default store.
func pointNorthOfStore(t *testing.T, km float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(storeLat+km/(kernel.EarthRadiusKm*math.Pi/180), storeLng)
	require.NoError(t, err)
	return p
}

func defaultSettings(t *testing.T, patch storefront.Patch) *storefront.Settings {
	t.Helper()
	s, err := storefront.DefaultSettings("Asia/Kolkata")
	require.NoError(t, err)
	require.NoError(t, s.Apply(patch))
	return s
}

func fixedID(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}

func menuItem(t *testing.T, id kernel.UUID, name string, price int64) *menu.MenuItem {
	t.Helper()
	m, err := menu.NewMenuItem(id, menu.Details{Name: name, Price: price, Category: "Mains", Available: true})
	require.NoError(t, err)
	return m
}

func newCustomer(t *testing.T, location *kernel.GeoPoint, blocked bool) *customer.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	c, err := customer.NewCustomer(phone, customer.Profile{Name: ptr("Asha"), Location: location}, time.Now())
	require.NoError(t, err)
	if blocked {
		c.ToggleBlock()
	}
	return c
}

func kolkata(t *testing.T, hh, mm int) time.Time {
	t.Helper()
	tz, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return time.Date(2025, 3, 1, hh, mm, 0, 0, tz)
}
