package commands

import (
	"context"
)

// ToggleRestaurantOpenCommandHandler flips a restaurant's open flag and
// reports the resulting state.
type ToggleRestaurantOpenCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewToggleRestaurantOpenCommandHandler creates a handler for the toggle.
func NewToggleRestaurantOpenCommandHandler(uowFactory RestaurantUoWFactory) ToggleRestaurantOpenCommandHandler {
	return ToggleRestaurantOpenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle toggles the flag and returns the new value.
func (h *ToggleRestaurantOpenCommandHandler) Handle(ctx context.Context, cmd ToggleRestaurantOpenCommand) (bool, error) {
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

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return false, err
	}

	open := aggregate.ToggleOpen()

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return open, nil
}
