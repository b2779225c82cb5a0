package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, quantity int, price int64) order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), quantity, money(t, price), "")
	require.NoError(t, err)
	return l
}

func newTestOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "12 Harbor Lane", lines)
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, 25000), "no onions")

		require.NoError(t, err)
		assert.Equal(t, 2, l.Quantity())
		assert.Equal(t, "no onions", l.Note())
		assert.Equal(t, int64(50000), l.Subtotal().Amount())
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, 25000), "")
		require.Error(t, err)
	})

	t.Run("zero_value_line_fails_validation", func(t *testing.T) {
		var l order.Line
		require.ErrorIs(t, l.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_and_unpaid", func(t *testing.T) {
		o := newTestOrder(t, line(t, 2, 25000), line(t, 1, 50000))

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.Unpaid, o.PaymentStatus())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.PromoCode())
		assert.Equal(t, int64(100000), o.TotalAmount().Amount())
		assert.True(t, o.DiscountAmount().IsZero())
	})

	t.Run("requires_lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "12 Harbor Lane", nil)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("requires_delivery_address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", []order.Line{line(t, 1, 1000)})
		require.Error(t, err)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ApplyPromotion(t *testing.T) {
	t.Run("keeps_total_plus_discount_invariant", func(t *testing.T) {
		o := newTestOrder(t, line(t, 4, 25000))

		require.NoError(t, o.ApplyPromotion("SAVE10", money(t, 10000)))

		assert.Equal(t, int64(90000), o.TotalAmount().Amount())
		assert.Equal(t, int64(10000), o.DiscountAmount().Amount())
		require.NotNil(t, o.PromoCode())
		assert.Equal(t, "SAVE10", *o.PromoCode())
		assert.Equal(t,
			o.PreDiscountTotal().Amount(),
			o.TotalAmount().Amount()+o.DiscountAmount().Amount())
	})

	t.Run("clamps_discount_to_pre_discount_total", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 20000))

		require.NoError(t, o.ApplyPromotion("BIGFIXED", money(t, 50000)))

		assert.Equal(t, int64(0), o.TotalAmount().Amount())
		assert.Equal(t, int64(20000), o.DiscountAmount().Amount())
	})

	t.Run("requires_code", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 20000))
		require.Error(t, o.ApplyPromotion("", money(t, 1000)))
	})
}

func TestOrder_AcceptByDriver(t *testing.T) {
	t.Run("ready_unassigned_order_is_accepted", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 30000))
		require.NoError(t, o.UpdateStatus(order.Ready, false))

		driverID := kernel.NewUUID()
		require.NoError(t, o.AcceptByDriver(driverID))

		assert.Equal(t, order.OnTheWay, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("non_ready_order_is_rejected", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 30000))

		err := o.AcceptByDriver(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrOrderNotReady)
		assert.Nil(t, o.Driver())
	})

	t.Run("already_assigned_order_is_rejected", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 30000))
		require.NoError(t, o.UpdateStatus(order.Ready, false))
		require.NoError(t, o.AcceptByDriver(kernel.NewUUID()))

		err := o.AcceptByDriver(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrOrderAlreadyAssigned)
	})

	t.Run("invalid_driver_id_is_rejected", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 30000))
		require.NoError(t, o.UpdateStatus(order.Ready, false))

		var blank kernel.UUID
		require.Error(t, o.AcceptByDriver(blank))
	})
}

func TestOrder_CompleteByDriver(t *testing.T) {
	acceptedOrder := func(t *testing.T, driverID kernel.UUID) *order.Order {
		t.Helper()
		o := newTestOrder(t, line(t, 1, 30000))
		require.NoError(t, o.UpdateStatus(order.Ready, false))
		require.NoError(t, o.AcceptByDriver(driverID))
		return o
	}

	t.Run("assigned_driver_completes", func(t *testing.T) {
		driverID := kernel.NewUUID()
		o := acceptedOrder(t, driverID)

		require.NoError(t, o.CompleteByDriver(driverID))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("other_driver_is_forbidden", func(t *testing.T) {
		o := acceptedOrder(t, kernel.NewUUID())

		err := o.CompleteByDriver(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.OnTheWay, o.Status())
	})

	t.Run("completion_is_terminal", func(t *testing.T) {
		driverID := kernel.NewUUID()
		o := acceptedOrder(t, driverID)
		require.NoError(t, o.CompleteByDriver(driverID))

		require.Error(t, o.CompleteByDriver(driverID))
		require.ErrorIs(t, o.AcceptByDriver(kernel.NewUUID()), order.ErrOrderAlreadyAssigned)
		require.ErrorIs(t, o.UpdateStatus(order.Pending, false), order.ErrOrderIsTerminal)
	})

	t.Run("unassigned_order_cannot_be_completed", func(t *testing.T) {
		o := newTestOrder(t, line(t, 1, 30000))
		require.ErrorIs(t, o.CompleteByDriver(kernel.NewUUID()), errs.ErrForbidden)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o := newTestOrder(t, line(t, 1, 30000))

	o.MarkPaid()

	assert.Equal(t, order.Paid, o.PaymentStatus())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_stored_state_verbatim", func(t *testing.T) {
		driverID := kernel.NewUUID()
		code := "SAVE10"
		lines := []order.Line{line(t, 2, 50000)}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driverID,
			"12 Harbor Lane", lines,
			order.OnTheWay, money(t, 90000), money(t, 10000), &code, order.Paid,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, o.Status())
		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, int64(90000), o.TotalAmount().Amount())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"12 Harbor Lane", []order.Line{line(t, 1, 1000)},
			order.Unknown, money(t, 1000), money(t, 0), nil, order.Unpaid,
		)
		require.Error(t, err)
	})
}
