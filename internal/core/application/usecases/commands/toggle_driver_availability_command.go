package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrToggleDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ToggleDriverAvailabilityCommand must be created via NewToggleDriverAvailabilityCommand constructor",
)

// ToggleDriverAvailabilityCommand flips a driver's on-shift flag.
type ToggleDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleDriverAvailabilityCommand creates a command to toggle driver availability.
func NewToggleDriverAvailabilityCommand(driverID kernel.UUID) (ToggleDriverAvailabilityCommand, error) {
	cmd := ToggleDriverAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return ToggleDriverAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver's identifier.
func (c ToggleDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ToggleDriverAvailabilityCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
