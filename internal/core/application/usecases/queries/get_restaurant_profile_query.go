package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetRestaurantProfileQueryIsNotConstructed = errors.New(
	"GetRestaurantProfileQuery must be created via NewGetRestaurantProfileQuery constructor",
)

// GetRestaurantProfileQuery resolves the restaurant owned by a user account.
type GetRestaurantProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantProfileQuery creates a query for a user's restaurant profile.
func NewGetRestaurantProfileQuery(userID kernel.UUID) (GetRestaurantProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetRestaurantProfileQuery{}, err
	}

	return GetRestaurantProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantProfileQueryIsNotConstructed)
}

// UserID returns the account whose restaurant is requested.
func (q GetRestaurantProfileQuery) UserID() kernel.UUID { return q.userID }

// RestaurantProfileResponse is the owner's view of their restaurant.
type RestaurantProfileResponse struct {
	ID       kernel.UUID
	UserID   kernel.UUID
	Name     string
	Address  string
	ImageURL string
	IsOpen   bool
}
