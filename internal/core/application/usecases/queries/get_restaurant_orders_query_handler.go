package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRestaurantOrdersQueryHandler reads a restaurant's incoming orders.
type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantOrdersQueryHandler creates a handler for restaurant order queries.
func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// Handle returns the restaurant's orders, newest first.
func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes())
}
