package menu_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, stock int) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoney(25000)
	require.NoError(t, err)

	item, err := menu.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(),
		"Nasi Goreng", "fried rice with egg", price, "", "mains", false, true, stock,
	)
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("positive_stock_is_available", func(t *testing.T) {
		item := newTestItem(t, 10)

		assert.Equal(t, 10, item.Stock())
		assert.True(t, item.IsAvailable())
	})

	t.Run("zero_stock_is_unavailable", func(t *testing.T) {
		item := newTestItem(t, 0)
		assert.False(t, item.IsAvailable())
	})

	t.Run("negative_stock_rejected", func(t *testing.T) {
		price, err := kernel.NewMoney(1000)
		require.NoError(t, err)
		_, err = menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Soup", "", price, "", "", false, false, -1)
		require.Error(t, err)
	})

	t.Run("name_required", func(t *testing.T) {
		price, err := kernel.NewMoney(1000)
		require.NoError(t, err)
		_, err = menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "", "", price, "", "", false, false, 5)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item menu.MenuItem
		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_Reserve(t *testing.T) {
	t.Run("decrements_stock", func(t *testing.T) {
		item := newTestItem(t, 5)

		require.NoError(t, item.Reserve(3))

		assert.Equal(t, 2, item.Stock())
		assert.True(t, item.IsAvailable())
	})

	t.Run("clears_availability_at_zero", func(t *testing.T) {
		item := newTestItem(t, 3)

		require.NoError(t, item.Reserve(3))

		assert.Equal(t, 0, item.Stock())
		assert.False(t, item.IsAvailable())
	})

	t.Run("insufficient_stock_leaves_ledger_untouched", func(t *testing.T) {
		item := newTestItem(t, 2)

		err := item.Reserve(3)

		require.ErrorIs(t, err, menu.ErrInsufficientStock)
		assert.Equal(t, 2, item.Stock())
		assert.True(t, item.IsAvailable())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		item := newTestItem(t, 2)
		require.Error(t, item.Reserve(0))
		require.Error(t, item.Reserve(-1))
	})
}

func TestMenuItem_SetStock(t *testing.T) {
	t.Run("restock_restores_availability", func(t *testing.T) {
		item := newTestItem(t, 1)
		require.NoError(t, item.Reserve(1))
		require.False(t, item.IsAvailable())

		require.NoError(t, item.SetStock(10))

		assert.Equal(t, 10, item.Stock())
		assert.True(t, item.IsAvailable())
	})

	t.Run("zero_stock_clears_availability", func(t *testing.T) {
		item := newTestItem(t, 5)

		require.NoError(t, item.SetStock(0))

		assert.False(t, item.IsAvailable())
	})
}

func TestMenuItem_SetAvailability(t *testing.T) {
	t.Run("owner_can_switch_off_anytime", func(t *testing.T) {
		item := newTestItem(t, 5)

		require.NoError(t, item.SetAvailability(false))

		assert.False(t, item.IsAvailable())
		assert.Equal(t, 5, item.Stock())
	})

	t.Run("switching_on_requires_stock", func(t *testing.T) {
		item := newTestItem(t, 1)
		require.NoError(t, item.Reserve(1))

		require.ErrorIs(t, item.SetAvailability(true), menu.ErrItemOutOfStock)
	})
}

func TestMenuItem_UpdateDetails(t *testing.T) {
	item := newTestItem(t, 5)
	newPrice, err := kernel.NewMoney(30000)
	require.NoError(t, err)

	require.NoError(t, item.UpdateDetails("Nasi Goreng Spesial", "with chicken", newPrice, "/img/ng.png", "mains", false, true))

	assert.Equal(t, "Nasi Goreng Spesial", item.Name())
	assert.Equal(t, int64(30000), item.Price().Amount())
	// Edits do not touch the ledger.
	assert.Equal(t, 5, item.Stock())
}
