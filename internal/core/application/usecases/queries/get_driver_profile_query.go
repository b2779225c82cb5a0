package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDriverProfileQueryIsNotConstructed = errors.New(
	"GetDriverProfileQuery must be created via NewGetDriverProfileQuery constructor",
)

// GetDriverProfileQuery resolves the driver profile of a user account.
type GetDriverProfileQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverProfileQuery creates a query for a user's driver profile.
func NewGetDriverProfileQuery(userID kernel.UUID) (GetDriverProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetDriverProfileQuery{}, err
	}

	return GetDriverProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverProfileQueryIsNotConstructed)
}

// UserID returns the account whose driver profile is requested.
func (q GetDriverProfileQuery) UserID() kernel.UUID { return q.userID }

// DriverProfileResponse is the driver's view of their own profile.
type DriverProfileResponse struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	VehiclePlate string
	IsAvailable  bool
}
