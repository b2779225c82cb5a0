package commands

import (
	"context"
)

// ToggleDriverAvailabilityCommandHandler flips a driver's availability and
// reports the resulting state.
type ToggleDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewToggleDriverAvailabilityCommandHandler creates a handler for the toggle.
func NewToggleDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) ToggleDriverAvailabilityCommandHandler {
	return ToggleDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle toggles the flag and returns the new value.
func (h *ToggleDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd ToggleDriverAvailabilityCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return false, err
	}

	available := aggregate.ToggleAvailability()

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return available, nil
}
