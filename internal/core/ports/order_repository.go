package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; they only transition state.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	// Must run inside the creating transaction so line inserts and stock
	// reservations commit or roll back as one unit.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, payment and assignment changes to an
	// existing order. Lines are immutable and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order with its lines under a row lock.
	// Read-modify-write flows such as driver assignment must use this so
	// concurrent writers serialize on the order row instead of clobbering
	// each other's committed state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
