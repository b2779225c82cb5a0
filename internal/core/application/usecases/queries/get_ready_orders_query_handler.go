package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetReadyOrdersQueryHandler reads the unclaimed pickup queue. Oldest ready
// order first, so the queue drains fairly.
type GetReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReadyOrdersQueryHandler creates a handler for the pickup-list query.
func NewGetReadyOrdersQueryHandler(db *gorm.DB) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{db: db}
}

// Handle returns ready, unassigned orders.
func (h GetReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReadyOrdersQuery,
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
		WHERE status = ? AND driver_id IS NULL
		ORDER BY created_at
	`, int(order.Ready))
}
