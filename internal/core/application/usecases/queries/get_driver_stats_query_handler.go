package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// driverCommissionPercent is the driver's cut of each delivered order.
const driverCommissionPercent = 20

// GetDriverStatsQueryHandler aggregates a driver's delivered orders into
// completion and earnings numbers.
type GetDriverStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverStatsQueryHandler creates a handler for driver stats.
func NewGetDriverStatsQueryHandler(db *gorm.DB) GetDriverStatsQueryHandler {
	return GetDriverStatsQueryHandler{db: db}
}

// Handle sums the driver's delivered orders and computes the commission.
func (h GetDriverStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverStatsQuery,
) (DriverStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverStatsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE driver_id = ? AND status = ?
	`, query.DriverID().Bytes(), int(order.Delivered)).Row()

	var (
		resp           DriverStatsResponse
		deliveredTotal int64
	)
	if err := row.Scan(&resp.CompletedDeliveries, &deliveredTotal); err != nil {
		return DriverStatsResponse{}, err
	}

	resp.Earnings = deliveredTotal * driverCommissionPercent / 100
	return resp, nil
}
