package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantStatsQueryIsNotConstructed = errors.New(
	"GetRestaurantStatsQuery must be created via NewGetRestaurantStatsQuery constructor",
)

// GetRestaurantStatsQuery aggregates a restaurant's delivered business.
type GetRestaurantStatsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantStatsQuery creates a query for restaurant revenue stats.
func NewGetRestaurantStatsQuery(restaurantID kernel.UUID) (GetRestaurantStatsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantStatsQuery{}, err
	}

	return GetRestaurantStatsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantStatsQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose stats are requested.
func (q GetRestaurantStatsQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// RestaurantStatsResponse sums delivered orders. Revenue is the sum of the
// delivered orders' charged totals, discounts already deducted.
type RestaurantStatsResponse struct {
	DeliveredOrders int
	Revenue         int64
}
