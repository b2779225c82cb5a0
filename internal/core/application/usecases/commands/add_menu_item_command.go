package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a restaurant adding a dish to its menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
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

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
func NewAddMenuItemCommand(
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
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		description:  description,
		price:        price,
		imageURL:     imageURL,
		category:     category,
		isVegetarian: isVegetarian,
		isSpicy:      isSpicy,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setName(name),
		cmd.setStock(stock),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier minted for the new item.
func (c AddMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }

// RestaurantID returns the owning restaurant's identifier.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string { return c.name }

// Description returns the dish description.
func (c AddMenuItemCommand) Description() string { return c.description }

// Price returns the unit price.
func (c AddMenuItemCommand) Price() kernel.Money { return c.price }

// ImageURL returns the dish image location.
func (c AddMenuItemCommand) ImageURL() string { return c.imageURL }

// Category returns the menu category.
func (c AddMenuItemCommand) Category() string { return c.category }

// IsVegetarian reports the vegetarian flag.
func (c AddMenuItemCommand) IsVegetarian() bool { return c.isVegetarian }

// IsSpicy reports the spicy flag.
func (c AddMenuItemCommand) IsSpicy() bool { return c.isSpicy }

// Stock returns the initial stock level.
func (c AddMenuItemCommand) Stock() int { return c.stock }

func (c *AddMenuItemCommand) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.menuItemID = id
	return nil
}

func (c *AddMenuItemCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	c.stock = stock
	return nil
}
