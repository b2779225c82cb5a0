package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// profiles.
type RestaurantRepository interface {
	// Add persists a new restaurant profile.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists profile changes (open flag, details).
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetByUser retrieves the restaurant linked to a user account.
	// Gateways call this once per request to resolve restaurant-for-user.
	GetByUser(ctx context.Context, userID kernel.UUID) (*restaurant.Restaurant, error)
}
