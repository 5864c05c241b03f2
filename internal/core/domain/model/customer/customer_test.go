package customer_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/customer"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var joined = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func newCustomer(t *testing.T, p customer.Profile) *customer.Customer {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	c, err := customer.NewCustomer(phone, p, joined)
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	loc, _ := kernel.NewGeoPoint(28.61, 77.21)
	c := newCustomer(t, customer.Profile{Name: ptr("Asha"), Address: ptr(" 12 MG Road "), Location: &loc})

	assert.Equal(t, "9876543210", c.Phone().String())
	assert.Equal(t, "Asha", c.Name())
	assert.Equal(t, "12 MG Road", c.Address())
	require.True(t, c.HasLocation())
	assert.InDelta(t, 28.61, c.Location().Lat(), 1e-9)
	assert.False(t, c.IsBlocked())
	assert.Equal(t, joined, c.JoinedAt())

	_, err := customer.NewCustomer(kernel.Phone{}, customer.Profile{}, joined)
	require.ErrorIs(t, err, kernel.ErrPhoneIsNotConstructed)
}

func TestCustomer_ApplyProfileNeverBlanksFields(t *testing.T) {
	c := newCustomer(t, customer.Profile{Name: ptr("Asha"), Address: ptr("12 MG Road")})

	c.ApplyProfile(customer.Profile{Name: ptr(""), Address: nil})
	assert.Equal(t, "Asha", c.Name())
	assert.Equal(t, "12 MG Road", c.Address())
	assert.False(t, c.HasLocation())

	c.ApplyProfile(customer.Profile{Address: ptr("7 Brigade Road")})
	assert.Equal(t, "Asha", c.Name())
	assert.Equal(t, "7 Brigade Road", c.Address())

	var unbuilt kernel.GeoPoint
	c.ApplyProfile(customer.Profile{Location: &unbuilt})
	assert.False(t, c.HasLocation())
}

func TestCustomer_ToggleBlock(t *testing.T) {
	c := newCustomer(t, customer.Profile{Name: ptr("Asha")})

	assert.True(t, c.ToggleBlock())
	assert.True(t, c.IsBlocked())
	assert.False(t, c.ToggleBlock())
	assert.Equal(t, "Asha", c.Name())
}
