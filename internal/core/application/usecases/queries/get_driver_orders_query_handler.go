package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler reads a driver's active run or delivered
// history.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for driver delivery queries.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle returns the driver's deliveries filtered by the query's mode.
func (h GetDriverOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDriverOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := order.Delivered
	if query.ActiveOnly() {
		status = order.OnTheWay
	}

	return fetchOrders(ctx, h.db, `
		SELECT
			id,
			customer_id,
			restaurant_id,
			driver_id,
			status,
			total_amount,
			discount_amount,
			promo_code,
			payment_status,
			delivery_address
		FROM orders
		WHERE driver_id = ? AND status = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes(), int(status))
}
