package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Pending:   "pending",
		order.Confirmed: "confirmed",
		order.Accepted:  "accepted",
		order.Cooking:   "cooking",
		order.Ready:     "ready",
		order.OnTheWay:  "on_the_way",
		order.Delivered: "delivered",
		order.Cancelled: "cancelled",
		order.Unknown:   "unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_valid_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Accepted, order.Cooking,
			order.Ready, order.OnTheWay, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		_, err := order.StatusFromString("refunded")
		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatus_Update(t *testing.T) {
	t.Run("free_form_allows_any_kitchen_jump", func(t *testing.T) {
		next, err := order.Pending.Update(order.Ready, false)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		// Going backwards is also accepted in non-strict mode.
		next, err = order.Ready.Update(order.Cooking, false)
		require.NoError(t, err)
		assert.Equal(t, order.Cooking, next)
	})

	t.Run("terminal_statuses_reject_all_updates", func(t *testing.T) {
		_, err := order.Delivered.Update(order.Pending, false)
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)

		_, err = order.Cancelled.Update(order.Ready, true)
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	})

	t.Run("rejects_invalid_target", func(t *testing.T) {
		_, err := order.Pending.Update(order.Unknown, false)
		require.Error(t, err)
	})

	t.Run("strict_mode_enforces_table", func(t *testing.T) {
		next, err := order.Cooking.Update(order.Ready, true)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		_, err = order.Ready.Update(order.Cooking, true)
		require.Error(t, err)

		_, err = order.Pending.Update(order.Cancelled, true)
		require.NoError(t, err)
	})
}

func TestStatus_AcceptPickup(t *testing.T) {
	t.Run("only_ready_can_be_picked_up", func(t *testing.T) {
		next, err := order.Ready.AcceptPickup()
		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, next)
	})

	t.Run("everything_else_is_rejected", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Accepted, order.Cooking,
			order.OnTheWay, order.Delivered, order.Cancelled,
		} {
			_, err := s.AcceptPickup()
			require.ErrorIs(t, err, order.ErrOrderNotReady, "status %s", s)
		}
	})
}

func TestStatus_CompleteDelivery(t *testing.T) {
	t.Run("on_the_way_completes", func(t *testing.T) {
		next, err := order.OnTheWay.CompleteDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("delivered_is_terminal", func(t *testing.T) {
		_, err := order.Delivered.CompleteDelivery()
		require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	})

	t.Run("ready_cannot_skip_pickup", func(t *testing.T) {
		_, err := order.Ready.CompleteDelivery()
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
}
