package promotion_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, v int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(v)
	require.NoError(t, err)
	return m
}

func newPromo(t *testing.T, discountType promotion.DiscountType, value int64, minOrder int64) *promotion.Promotion {
	t.Helper()
	p, err := promotion.NewPromotion(
		kernel.NewUUID(), kernel.NewUUID(),
		"SAVE10", "ten percent off",
		discountType, value, money(t, minOrder), true,
		time.Now().Add(-24*time.Hour), time.Now().Add(24*time.Hour),
	)
	require.NoError(t, err)
	return p
}

func TestNewPromotion(t *testing.T) {
	t.Run("requires_code", func(t *testing.T) {
		_, err := promotion.NewPromotion(
			kernel.NewUUID(), kernel.NewUUID(), "", "",
			promotion.Percent, 10, money(t, 0), true,
			time.Now(), time.Now().Add(time.Hour),
		)
		require.Error(t, err)
	})

	t.Run("rejects_non_positive_value", func(t *testing.T) {
		_, err := promotion.NewPromotion(
			kernel.NewUUID(), kernel.NewUUID(), "FREE", "",
			promotion.Fixed, 0, money(t, 0), true,
			time.Now(), time.Now().Add(time.Hour),
		)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_discount_type", func(t *testing.T) {
		_, err := promotion.NewPromotion(
			kernel.NewUUID(), kernel.NewUUID(), "FREE", "",
			promotion.DiscountUnknown, 10, money(t, 0), true,
			time.Now(), time.Now().Add(time.Hour),
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p promotion.Promotion
		require.ErrorIs(t, p.Validate(), promotion.ErrPromotionIsNotConstructed)
	})
}

func TestPromotion_Evaluate(t *testing.T) {
	now := time.Now()

	t.Run("percent_discount_on_qualifying_total", func(t *testing.T) {
		p := newPromo(t, promotion.Percent, 10, 50000)

		discount, applied := p.Evaluate(money(t, 100000), now)

		assert.True(t, applied)
		assert.Equal(t, int64(10000), discount.Amount())
	})

	t.Run("fixed_discount", func(t *testing.T) {
		p := newPromo(t, promotion.Fixed, 15000, 0)

		discount, applied := p.Evaluate(money(t, 100000), now)

		assert.True(t, applied)
		assert.Equal(t, int64(15000), discount.Amount())
	})

	t.Run("fixed_discount_clamped_to_total", func(t *testing.T) {
		p := newPromo(t, promotion.Fixed, 50000, 0)

		discount, applied := p.Evaluate(money(t, 30000), now)

		assert.True(t, applied)
		assert.Equal(t, int64(30000), discount.Amount())
	})

	t.Run("below_min_order_not_applied", func(t *testing.T) {
		p := newPromo(t, promotion.Percent, 10, 50000)

		discount, applied := p.Evaluate(money(t, 30000), now)

		assert.False(t, applied)
		assert.True(t, discount.IsZero())
	})

	t.Run("inactive_not_applied", func(t *testing.T) {
		p := newPromo(t, promotion.Percent, 10, 0)
		p.Deactivate()

		_, applied := p.Evaluate(money(t, 100000), now)
		assert.False(t, applied)
	})

	t.Run("outside_window_not_applied", func(t *testing.T) {
		p := newPromo(t, promotion.Percent, 10, 0)

		_, appliedBefore := p.Evaluate(money(t, 100000), now.Add(-48*time.Hour))
		_, appliedAfter := p.Evaluate(money(t, 100000), now.Add(48*time.Hour))

		assert.False(t, appliedBefore)
		assert.False(t, appliedAfter)
	})

	t.Run("window_bounds_are_inclusive", func(t *testing.T) {
		from := now.Add(-time.Hour)
		until := now.Add(time.Hour)
		p, err := promotion.NewPromotion(
			kernel.NewUUID(), kernel.NewUUID(), "EDGE", "",
			promotion.Percent, 10, money(t, 0), true, from, until,
		)
		require.NoError(t, err)

		_, appliedAtFrom := p.Evaluate(money(t, 1000), from)
		_, appliedAtUntil := p.Evaluate(money(t, 1000), until)

		assert.True(t, appliedAtFrom)
		assert.True(t, appliedAtUntil)
	})
}

func TestDiscountTypeFromString(t *testing.T) {
	percent, err := promotion.DiscountTypeFromString("percent")
	require.NoError(t, err)
	assert.Equal(t, promotion.Percent, percent)

	fixed, err := promotion.DiscountTypeFromString("fixed")
	require.NoError(t, err)
	assert.Equal(t, promotion.Fixed, fixed)

	_, err = promotion.DiscountTypeFromString("bogo")
	require.Error(t, err)
}
