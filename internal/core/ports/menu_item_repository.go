package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items,
// including the locked read the inventory ledger depends on.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists content edits and stock changes.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Delete removes a menu item from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetForUpdate retrieves a menu item under a row-level write lock
	// (SELECT ... FOR UPDATE). Callers must hold an open transaction;
	// two concurrent reservations of the same item serialize here, which
	// is what keeps the last units from being sold twice.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetByRestaurant retrieves all items of one restaurant's menu.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*menu.MenuItem, error)
}
