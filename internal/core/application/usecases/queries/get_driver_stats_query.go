package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetDriverStatsQueryIsNotConstructed = errors.New(
	"GetDriverStatsQuery must be created via NewGetDriverStatsQuery constructor",
)

// GetDriverStatsQuery aggregates a driver's completed deliveries and
// earnings.
type GetDriverStatsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverStatsQuery creates a query for driver earnings stats.
func NewGetDriverStatsQuery(driverID kernel.UUID) (GetDriverStatsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverStatsQuery{}, err
	}

	return GetDriverStatsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatsQueryIsNotConstructed)
}

// DriverID returns the driver whose stats are requested.
func (q GetDriverStatsQuery) DriverID() kernel.UUID { return q.driverID }

// DriverStatsResponse reports completed deliveries and earnings: a 20%
// commission on the charged totals of delivered orders.
type DriverStatsResponse struct {
	CompletedDeliveries int
	Earnings            int64
}
