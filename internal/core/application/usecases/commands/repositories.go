// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: constructor
// validation, transaction management, persistence, and post-commit event
// publication.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// PromotionRepoFactory provides access to the promotion repository within a transaction.
	PromotionRepoFactory interface {
		PromotionRepository() ports.PromotionRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for single-order read-modify-write
	// operations (status, payment, driver assignment).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW spans the full order-creation transaction: promotion
	// lookup, inventory reservations and order/line inserts all commit or
	// roll back together.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuItemRepoFactory
		PromotionRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// MenuUoW manages transactions for menu management operations.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// PromotionUoW manages transactions for promotion maintenance.
	PromotionUoW interface {
		TxManager
		PromotionRepoFactory
	}

	// PromotionUoWFactory creates new promotion unit of work instances.
	PromotionUoWFactory interface {
		Create() PromotionUoW
	}

	// DriverUoW manages transactions for driver profile operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RestaurantUoW manages transactions for restaurant profile operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}
)
