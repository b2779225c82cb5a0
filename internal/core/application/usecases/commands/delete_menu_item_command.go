package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a restaurant removing a dish from its menu.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(menuItemID kernel.UUID, restaurantID kernel.UUID) (DeleteMenuItemCommand, error) {
	cmd := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the target item's identifier.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the calling restaurant's identifier.
func (c DeleteMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

func (c *DeleteMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *DeleteMenuItemCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}
