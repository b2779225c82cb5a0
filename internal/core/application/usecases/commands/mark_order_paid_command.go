package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand records a successful payment on an order, issued by
// the restaurant that owns it.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
func NewMarkOrderPaidCommand(orderID kernel.UUID, restaurantID kernel.UUID) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the calling restaurant's identifier.
func (c MarkOrderPaidCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *MarkOrderPaidCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *MarkOrderPaidCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}
