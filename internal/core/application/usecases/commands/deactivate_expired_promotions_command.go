package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrDeactivateExpiredPromotionsCommandIsNotConstructed = errors.New(
	"DeactivateExpiredPromotionsCommand must be created via NewDeactivateExpiredPromotionsCommand constructor",
)

// DeactivateExpiredPromotionsCommand triggers the sweep that switches off
// promotions whose validity window has ended. Expiry is already enforced at
// evaluation time; the sweep keeps stored state in line with the calendar so
// dashboards and lookups do not surface stale codes.
type DeactivateExpiredPromotionsCommand struct {
	guard guard.ConstructorGuard
}

// NewDeactivateExpiredPromotionsCommand creates the parameterless sweep command.
func NewDeactivateExpiredPromotionsCommand() DeactivateExpiredPromotionsCommand {
	return DeactivateExpiredPromotionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DeactivateExpiredPromotionsCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateExpiredPromotionsCommandIsNotConstructed)
}
