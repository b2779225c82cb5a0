package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDriverOrdersQueryIsNotConstructed = errors.New(
	"GetDriverOrdersQuery must be created via NewGetDriverOrdersQuery constructor",
)

// GetDriverOrdersQuery retrieves a driver's deliveries: either the active
// run (on the way) or the completed history.
type GetDriverOrdersQuery struct {
	driverID   kernel.UUID
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetDriverOrdersQuery creates a query for a driver's deliveries.
// With activeOnly the result holds in-flight deliveries; otherwise the
// delivered history.
func NewGetDriverOrdersQuery(driverID kernel.UUID, activeOnly bool) (GetDriverOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverOrdersQuery{}, err
	}

	return GetDriverOrdersQuery{
		driverID:   driverID,
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverOrdersQueryIsNotConstructed)
}

// DriverID returns the driver whose deliveries are requested.
func (q GetDriverOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// ActiveOnly reports whether only in-flight deliveries are requested.
func (q GetDriverOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}
