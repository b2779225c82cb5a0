package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRestaurantStatsQueryHandler aggregates delivered revenue for one
// restaurant.
type GetRestaurantStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantStatsQueryHandler creates a handler for restaurant stats.
func NewGetRestaurantStatsQueryHandler(db *gorm.DB) GetRestaurantStatsQueryHandler {
	return GetRestaurantStatsQueryHandler{db: db}
}

// Handle sums the restaurant's delivered orders.
func (h GetRestaurantStatsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantStatsQuery,
) (RestaurantStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantStatsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE restaurant_id = ? AND status = ?
	`, query.RestaurantID().Bytes(), int(order.Delivered)).Row()

	var resp RestaurantStatsResponse
	if err := row.Scan(&resp.DeliveredOrders, &resp.Revenue); err != nil {
		return RestaurantStatsResponse{}, err
	}

	return resp, nil
}
