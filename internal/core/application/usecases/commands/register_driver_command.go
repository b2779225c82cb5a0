package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand creates a driver profile for a user account.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID     kernel.UUID
	userID       kernel.UUID
	vehiclePlate string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver profile.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	userID kernel.UUID,
	vehiclePlate string,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setUserID(userID),
		cmd.setVehiclePlate(vehiclePlate),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the identifier minted for the new profile.
func (c RegisterDriverCommand) DriverID() kernel.UUID { return c.driverID }

// UserID returns the linked user account's identifier.
func (c RegisterDriverCommand) UserID() kernel.UUID { return c.userID }

// VehiclePlate returns the driver's vehicle plate.
func (c RegisterDriverCommand) VehiclePlate() string { return c.vehiclePlate }

func (c *RegisterDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *RegisterDriverCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterDriverCommand) setVehiclePlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("vehiclePlate")
	}
	c.vehiclePlate = plate
	return nil
}
