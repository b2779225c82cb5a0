package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
)

// PromotionRepository defines the read-mostly persistence contract for
// promotions. The lifecycle engine only reads; writes come from restaurant
// management and the expiry sweep job.
type PromotionRepository interface {
	// Add persists a new promotion.
	Add(ctx context.Context, aggregate *promotion.Promotion) error

	// Update persists changes (typically deactivation).
	Update(ctx context.Context, aggregate *promotion.Promotion) error

	// FindByCode looks a promotion up by code within one restaurant.
	// Returns an ObjectNotFoundError when no such code exists; callers at
	// order-creation time swallow that into a zero discount.
	FindByCode(ctx context.Context, code string, restaurantID kernel.UUID) (*promotion.Promotion, error)

	// GetExpiredActive retrieves active promotions whose validity window
	// ended before the given instant. Used by the expiry sweep.
	GetExpiredActive(ctx context.Context, now time.Time) ([]*promotion.Promotion, error)
}
