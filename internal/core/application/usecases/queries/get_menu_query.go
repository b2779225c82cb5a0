package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves one restaurant's menu.
type GetMenuQuery struct {
	restaurantID  kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query. Customers browse with availableOnly
// set; owners see everything including sold-out items.
func NewGetMenuQuery(restaurantID kernel.UUID, availableOnly bool) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		restaurantID:  restaurantID,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose menu is requested.
func (q GetMenuQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// AvailableOnly reports whether sold-out items are filtered out.
func (q GetMenuQuery) AvailableOnly() bool { return q.availableOnly }

// MenuItemResponse is one menu item projection.
type MenuItemResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Description  string
	Price        int64
	ImageURL     string
	Category     string
	IsVegetarian bool
	IsSpicy      bool
	Stock        int
	IsAvailable  bool
}
