package order_test

import (
	"fmt"
	"testing"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range order.AllStatuses() {
		parsed, err := order.ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, bad := range []string{"", "Pending", "completed", "cancelled"} {
		_, err := order.ParseStatus(bad)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
	}
}

func TestStatus_WireValues(t *testing.T) {
	expected := []string{"pending_payment", "preparing", "ready", "on_the_way", "delivered", "rejected", "refunded"}
	got := make([]string, 0, len(expected))
	for _, s := range order.AllStatuses() {
		got = append(got, s.String())
	}
	assert.Equal(t, expected, got)
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.PendingPayment: {order.Preparing, order.Rejected},
		order.Preparing:      {order.Ready, order.Refunded},
		order.Ready:          {order.OnTheWay, order.Refunded},
		order.OnTheWay:       {order.Delivered, order.Refunded},
		order.Delivered:      {order.Refunded},
		order.Rejected:       nil,
		order.Refunded:       nil,
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				legal := false
				for _, candidate := range allowed[from] {
					if candidate == to {
						legal = true
					}
				}

				next, err := from.TransitionTo(to)
				assert.Equal(t, legal, from.CanTransitionTo(to))
				if legal {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Empty(t, next)
			})
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Refunded.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal(), "delivered orders can still be refunded")
	assert.False(t, order.PendingPayment.IsTerminal())
}

func TestStatus_TransitionToUnknown(t *testing.T) {
	_, err := order.Preparing.TransitionTo(order.Status("lost"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.Status("lost").TransitionTo(order.Preparing)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_NextIsACopy(t *testing.T) {
	next := order.PendingPayment.Next()
	next[0] = order.Refunded

	assert.Equal(t, []order.Status{order.Preparing, order.Rejected}, order.PendingPayment.Next())
}
