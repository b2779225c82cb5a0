package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// keeping concurrent operations isolated from one another.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly; repositories obtained from
// an active unit of work run inside its transaction, which is what ties an
// order's row inserts to its stock reservations.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// MenuItemRepository returns a MenuItemRepository bound to the current transaction.
	MenuItemRepository() MenuItemRepository

	// PromotionRepository returns a PromotionRepository bound to the current transaction.
	PromotionRepository() PromotionRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// RestaurantRepository returns a RestaurantRepository bound to the current transaction.
	RestaurantRepository() RestaurantRepository
}
