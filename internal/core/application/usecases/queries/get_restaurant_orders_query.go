package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery retrieves every order placed against one
// restaurant, newest first.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantOrdersQuery creates a query for a restaurant's orders.
func NewGetRestaurantOrdersQuery(restaurantID kernel.UUID) (GetRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}

	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are requested.
func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
