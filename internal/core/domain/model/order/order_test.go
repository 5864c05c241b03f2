package order_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), "  Dal Makhani ", 3, 120)
	require.NoError(t, err)
	assert.Equal(t, "Dal Makhani", item.Name())
	assert.Equal(t, int64(360), item.LineTotal())

	_, err = order.NewItem(kernel.UUID{}, "", 0, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero order.Item
	assert.ErrorIs(t, zero.Validate(), order.ErrItemIsNotConstructed)
}

func TestNewOrder(t *testing.T) {
	o := mustOrder(t)

	require.NoError(t, o.Validate())
	assert.Equal(t, order.PendingPayment, o.Status())
	assert.Equal(t, int64(304), o.Total())
	assert.Len(t, o.Items(), 2)
	assert.Equal(t, placedAt, o.CreatedAt())
	assert.Equal(t, placedAt, o.UpdatedAt())
	assert.False(t, o.IsPreOrder())

	events := o.GetDomainEvents()
	require.Len(t, events, 1)
	placed, ok := events[0].(order.PlacedEvent)
	require.True(t, ok)
	assert.Equal(t, order.OrderPlacedEventName, placed.EventName())
	assert.True(t, placed.OrderID.IsEqual(o.ID()))
	assert.Equal(t, "9876543210", placed.CustomerPhone)
	assert.Equal(t, int64(304), placed.Charges.Total)
}

func TestNewOrder_Rejects(t *testing.T) {
	item := mustItem(t, "Roti", 4, 10)
	good := order.Charges{Subtotal: 40, DeliveryFee: 49, PlatformFee: 5, Total: 94}

	tests := []struct {
		name      string
		recipient func(order.Recipient) order.Recipient
		items     []order.Item
		charges   order.Charges
		at        time.Time
		sentinel  error
	}{
		{
			name:     "no items",
			charges:  order.Charges{PlatformFee: 5, Total: 5},
			at:       placedAt,
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name:      "missing address",
			recipient: func(r order.Recipient) order.Recipient { r.Address = "  "; return r },
			items:     []order.Item{item},
			charges:   good,
			at:        placedAt,
			sentinel:  errs.ErrValueIsRequired,
		},
		{
			name:     "total does not add up",
			items:    []order.Item{item},
			charges:  order.Charges{Subtotal: 40, DeliveryFee: 49, PlatformFee: 5, Total: 100},
			at:       placedAt,
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "subtotal does not match the snapshot",
			items:    []order.Item{item},
			charges:  order.Charges{Subtotal: 50, DeliveryFee: 49, PlatformFee: 5, Total: 104},
			at:       placedAt,
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name:     "zero creation time",
			items:    []order.Item{item},
			charges:  good,
			sentinel: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipient := mustRecipient(t)
			if tt.recipient != nil {
				recipient = tt.recipient(recipient)
			}

			o, err := order.NewOrder(kernel.NewUUID(), recipient, tt.items, tt.charges, false, "", tt.at)

			require.ErrorIs(t, err, tt.sentinel)
			assert.Nil(t, o)
		})
	}
}

func TestOrder_SnapshotIsImmutable(t *testing.T) {
	o := mustOrder(t)

	items := o.Items()
	items[0] = mustItem(t, "Something Else", 1, 999)

	assert.Equal(t, "Paneer Tikka", o.Items()[0].Name())
	assert.Equal(t, int64(100), o.Items()[0].Price())
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := mustOrder(t)
	o.ClearDomainEvents()
	later := placedAt.Add(10 * time.Minute)

	require.NoError(t, o.ChangeStatus(order.Preparing, later))
	assert.Equal(t, order.Preparing, o.Status())
	assert.Equal(t, later, o.UpdatedAt())

	events := o.GetDomainEvents()
	require.Len(t, events, 1)
	changed := events[0].(order.StatusChangedEvent)
	assert.Equal(t, order.PendingPayment, changed.From)
	assert.Equal(t, order.Preparing, changed.To)

	err := o.ChangeStatus(order.PendingPayment, later)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Preparing, o.Status())
	assert.Len(t, o.GetDomainEvents(), 1)
}

func TestOrder_OwnershipAndContents(t *testing.T) {
	menuItemID := kernel.NewUUID()
	item, err := order.NewItem(menuItemID, "Biryani", 1, 220)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), mustRecipient(t), []order.Item{item},
		order.Charges{Subtotal: 220, DeliveryFee: 49, PlatformFee: 5, Total: 274}, true, " UPI123 ", placedAt)
	require.NoError(t, err)

	owner, _ := kernel.NewPhone("98765 43210")
	stranger, _ := kernel.NewPhone("9000000000")

	assert.True(t, o.BelongsTo(owner))
	assert.False(t, o.BelongsTo(stranger))
	assert.True(t, o.ContainsMenuItem(menuItemID))
	assert.False(t, o.ContainsMenuItem(kernel.NewUUID()))
	assert.True(t, o.IsPreOrder())
	assert.Equal(t, "UPI123", o.TransactionRef())
}

func TestRestoreOrder(t *testing.T) {
	item := mustItem(t, "Kulfi", 2, 60)
	id := kernel.NewUUID()

	o, err := order.RestoreOrder(id, mustRecipient(t), []order.Item{item},
		order.Charges{Subtotal: 120, DeliveryFee: 49, PlatformFee: 5, Total: 174},
		order.Delivered, false, "", placedAt, placedAt.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, order.Delivered, o.Status())
	assert.Empty(t, o.GetDomainEvents())
	assert.True(t, o.ID().IsEqual(id))

	_, err = order.RestoreOrder(id, mustRecipient(t), nil, order.Charges{}, order.Status("??"), false, "", placedAt, placedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero *order.Order
	assert.ErrorIs(t, zero.Validate(), order.ErrOrderIsNotConstructed)
}
