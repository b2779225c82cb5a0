// Package queries contains read-only operations against the database.
// Query handlers bypass the domain model and read projection rows directly
// with raw SQL, the read side of the CQRS split.
package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders a customer has placed,
// newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderLineResponse is one line of an order projection.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      int64
	Note       string
}

// OrderResponse is the shared order projection returned by the order list
// queries. Amounts are minor units; Status and PaymentStatus are the wire
// strings ("on_the_way", "paid").
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	DriverID        *kernel.UUID
	Status          string
	TotalAmount     int64
	DiscountAmount  int64
	PromoCode       *string
	PaymentStatus   string
	DeliveryAddress string
	Lines           []OrderLineResponse
}
