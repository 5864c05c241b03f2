package order_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 2, 14, 19, 30, 0, 0, time.UTC)

func mustRecipient(t *testing.T) order.Recipient {
	t.Helper()
	phone, err := kernel.NewPhone("9876543210")
	require.NoError(t, err)
	return order.Recipient{Phone: phone, Name: "Asha", Address: "12 MG Road"}
}

func mustItem(t *testing.T, name string, qty int, price int64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, qty, price)
	require.NoError(t, err)
	return item
}

func mustOrder(t *testing.T) *order.Order {
	t.Helper()
	items := []order.Item{mustItem(t, "Paneer Tikka", 2, 100), mustItem(t, "Lassi", 1, 50)}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		mustRecipient(t),
		items,
		order.Charges{Subtotal: 250, DeliveryFee: 49, PlatformFee: 5, Total: 304},
		false,
		"",
		placedAt,
	)
	require.NoError(t, err)
	return o
}
