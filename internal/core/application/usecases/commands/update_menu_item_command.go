package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a restaurant editing one of its dishes,
// including restocking and flipping availability.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	imageURL     string
	category     string
	isVegetarian bool
	isSpicy      bool
	stock        int
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to edit a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category string,
	isVegetarian bool,
	isSpicy bool,
	stock int,
	isAvailable bool,
) (UpdateMenuItemCommand, error) {
	cmd := UpdateMenuItemCommand{
		description:  description,
		price:        price,
		imageURL:     imageURL,
		category:     category,
		isVegetarian: isVegetarian,
		isSpicy:      isSpicy,
		isAvailable:  isAvailable,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setStock(stock),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the target item's identifier.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the calling restaurant's identifier.
func (c UpdateMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Name returns the dish name.
func (c UpdateMenuItemCommand) Name() string { return c.name }

// Description returns the dish description.
func (c UpdateMenuItemCommand) Description() string { return c.description }

// Price returns the unit price.
func (c UpdateMenuItemCommand) Price() kernel.Money { return c.price }

// ImageURL returns the dish image location.
func (c UpdateMenuItemCommand) ImageURL() string { return c.imageURL }

// Category returns the menu category.
func (c UpdateMenuItemCommand) Category() string { return c.category }

// IsVegetarian reports the vegetarian flag.
func (c UpdateMenuItemCommand) IsVegetarian() bool { return c.isVegetarian }

// IsSpicy reports the spicy flag.
func (c UpdateMenuItemCommand) IsSpicy() bool { return c.isSpicy }

// Stock returns the new stock level.
func (c UpdateMenuItemCommand) Stock() int { return c.stock }

// IsAvailable reports the requested availability flag.
func (c UpdateMenuItemCommand) IsAvailable() bool { return c.isAvailable }

func (c *UpdateMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *UpdateMenuItemCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *UpdateMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *UpdateMenuItemCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	c.stock = stock
	return nil
}
