package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection, lines included.
// Clients watching an order topic use it as their pull-based refresh.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order, or ObjectNotFound when it does not exist or
// belongs to a different customer.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, `
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
		WHERE id = ? AND customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}

	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return orders[0], nil
}
