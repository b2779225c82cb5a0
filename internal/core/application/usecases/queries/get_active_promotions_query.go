package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetActivePromotionsQueryIsNotConstructed = errors.New(
	"GetActivePromotionsQuery must be created via NewGetActivePromotionsQuery constructor",
)

// GetActivePromotionsQuery retrieves the promotions a restaurant currently
// honors: active and inside their validity window.
type GetActivePromotionsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActivePromotionsQuery creates a query for a restaurant's live promos.
func NewGetActivePromotionsQuery(restaurantID kernel.UUID) (GetActivePromotionsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetActivePromotionsQuery{}, err
	}

	return GetActivePromotionsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActivePromotionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActivePromotionsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose promotions are requested.
func (q GetActivePromotionsQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// PromotionResponse is one live promotion projection.
type PromotionResponse struct {
	ID            kernel.UUID
	Code          string
	Description   string
	DiscountType  string
	DiscountValue int64
	MinOrder      int64
	ValidFrom     time.Time
	ValidUntil    time.Time
}
