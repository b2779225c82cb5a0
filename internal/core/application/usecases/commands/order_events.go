package commands

import "fooddelivery/internal/core/domain/model/order"

// OrderStatusEvent is the slim payload published to the per-order topic
// after a status change commits. Subscribers there already hold the order
// and only need the new status.
type OrderStatusEvent struct {
	OrderID      string `json:"orderId"`
	RestaurantID string `json:"restaurantId"`
	Status       string `json:"status"`
}

// OrderLineEvent is one line inside a full-order event payload.
type OrderLineEvent struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Note       string `json:"note,omitempty"`
}

// OrderEvent carries the whole order. Published where the subscriber has no
// prior copy to patch: the restaurant's new-order feed and the driver pickup
// broadcast, so a driver can judge the job from the payload alone.
type OrderEvent struct {
	OrderID         string           `json:"orderId"`
	CustomerID      string           `json:"customerId"`
	RestaurantID    string           `json:"restaurantId"`
	DriverID        *string          `json:"driverId,omitempty"`
	Status          string           `json:"status"`
	TotalAmount     int64            `json:"totalAmount"`
	DiscountAmount  int64            `json:"discountAmount"`
	PromoCode       *string          `json:"promoCode,omitempty"`
	PaymentStatus   string           `json:"paymentStatus"`
	DeliveryAddress string           `json:"deliveryAddress"`
	Lines           []OrderLineEvent `json:"lines"`
}

func newOrderEvent(aggregate *order.Order) OrderEvent {
	lines := make([]OrderLineEvent, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineEvent{
			ID:         line.ID().String(),
			MenuItemID: line.MenuItemID().String(),
			Quantity:   line.Quantity(),
			Price:      line.Price().Amount(),
			Note:       line.Note(),
		})
	}

	event := OrderEvent{
		OrderID:         aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		RestaurantID:    aggregate.RestaurantID().String(),
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		DiscountAmount:  aggregate.DiscountAmount().Amount(),
		PromoCode:       aggregate.PromoCode(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Lines:           lines,
	}

	if driverID := aggregate.Driver(); driverID != nil {
		id := driverID.String()
		event.DriverID = &id
	}

	return event
}
