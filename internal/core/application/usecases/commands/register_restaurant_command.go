package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
	"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
)

// RegisterRestaurantCommand creates a restaurant profile for a user account.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	userID       kernel.UUID
	name         string
	address      string
	imageURL     string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a restaurant.
func NewRegisterRestaurantCommand(
	restaurantID kernel.UUID,
	userID kernel.UUID,
	name string,
	address string,
	imageURL string,
) (RegisterRestaurantCommand, error) {
	cmd := RegisterRestaurantCommand{
		imageURL: imageURL,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier minted for the new profile.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// UserID returns the linked user account's identifier.
func (c RegisterRestaurantCommand) UserID() kernel.UUID { return c.userID }

// Name returns the restaurant name.
func (c RegisterRestaurantCommand) Name() string { return c.name }

// Address returns the restaurant address.
func (c RegisterRestaurantCommand) Address() string { return c.address }

// ImageURL returns the restaurant image location.
func (c RegisterRestaurantCommand) ImageURL() string { return c.imageURL }

func (c *RegisterRestaurantCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *RegisterRestaurantCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterRestaurantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
