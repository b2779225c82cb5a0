package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves the restaurants customers can browse.
type GetRestaurantsQuery struct {
	openOnly bool

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a restaurant listing query.
func NewGetRestaurantsQuery(openOnly bool) GetRestaurantsQuery {
	return GetRestaurantsQuery{
		openOnly: openOnly,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// OpenOnly reports whether closed restaurants are filtered out.
func (q GetRestaurantsQuery) OpenOnly() bool { return q.openOnly }

// RestaurantResponse is one restaurant projection.
type RestaurantResponse struct {
	ID       kernel.UUID
	Name     string
	Address  string
	ImageURL string
	IsOpen   bool
}
