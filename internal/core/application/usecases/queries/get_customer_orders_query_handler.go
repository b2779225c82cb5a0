package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the database, lines included.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
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
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes())
}

// fetchOrders runs an order projection query and attaches each order's
// lines. Shared by every order list query; the SQL must select the columns
// scanOrderRow expects.
func fetchOrders(ctx context.Context, db *gorm.DB, sql string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attachLines(ctx, db, orders)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		resp            OrderResponse
		id              uuid.UUID
		customerID      uuid.UUID
		restaurantID    uuid.UUID
		driverID        *uuid.UUID
		status          int
		paymentStatus   int
		promoCode       *string
		deliveryAddress string
	)

	if err := row.Scan(
		&id,
		&customerID,
		&restaurantID,
		&driverID,
		&status,
		&resp.TotalAmount,
		&resp.DiscountAmount,
		&promoCode,
		&paymentStatus,
		&deliveryAddress,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	if driverID != nil {
		dID, dErr := kernel.UUIDFromBytes((*driverID)[:])
		if dErr != nil {
			return OrderResponse{}, dErr
		}
		resp.DriverID = &dID
	}

	resp.ID = orderID
	resp.CustomerID = custID
	resp.RestaurantID = restID
	resp.Status = order.Status(status).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
	resp.PromoCode = promoCode
	resp.DeliveryAddress = deliveryAddress
	return resp, nil
}

func attachLines(ctx context.Context, db *gorm.DB, orders []OrderResponse) ([]OrderResponse, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID.Bytes()] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_item_id,
			quantity,
			price,
			note
		FROM order_lines
		WHERE order_id IN ?
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID    uuid.UUID
			menuItemID uuid.UUID
			line       OrderLineResponse
		)

		if err = rows.Scan(&orderID, &menuItemID, &line.Quantity, &line.Price, &line.Note); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line.MenuItemID = itemID

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Lines = append(orders[i].Lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
