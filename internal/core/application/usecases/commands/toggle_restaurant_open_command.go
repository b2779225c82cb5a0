package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrToggleRestaurantOpenCommandIsNotConstructed = errors.New(
	"ToggleRestaurantOpenCommand must be created via NewToggleRestaurantOpenCommand constructor",
)

// ToggleRestaurantOpenCommand flips a restaurant's open-for-orders flag.
type ToggleRestaurantOpenCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleRestaurantOpenCommand creates a command to toggle the open flag.
func NewToggleRestaurantOpenCommand(restaurantID kernel.UUID) (ToggleRestaurantOpenCommand, error) {
	cmd := ToggleRestaurantOpenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRestaurantID(restaurantID); err != nil {
		return ToggleRestaurantOpenCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleRestaurantOpenCommand) Validate() error {
	return c.guard.Validate(ErrToggleRestaurantOpenCommandIsNotConstructed)
}

// RestaurantID returns the restaurant's identifier.
func (c ToggleRestaurantOpenCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *ToggleRestaurantOpenCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}
