package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrOrderItemsAreRequired     = errors.New("order must contain at least one item")
)

// OrderLineInput is one submitted cart position. The price is the unit
// price snapshot the client saw at submission time.
type OrderLineInput struct {
	MenuItemID kernel.UUID
	Quantity   int
	Price      kernel.Money
	Note       string
}

// CreateOrderCommand represents a customer's request to place an order
// against one restaurant's menu, optionally carrying a promo code.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	lines           []OrderLineInput
	promoCode       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The promo code may be empty; an unknown or unqualified code never fails
// the order, it just yields no discount.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	lines []OrderLineInput,
	promoCode string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		promoCode: promoCode,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier minted for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the customer's delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Lines returns the submitted cart positions in order.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

// PromoCode returns the submitted promo code, empty when none.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if len(lines) == 0 {
		return ErrOrderItemsAreRequired
	}
	c.lines = lines
	return nil
}
