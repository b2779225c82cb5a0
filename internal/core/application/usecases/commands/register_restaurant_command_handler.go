package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/restaurant"
)

// RegisterRestaurantCommandHandler handles restaurant profile creation.
// A new restaurant starts open.
type RegisterRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant registration.
func NewRegisterRestaurantCommandHandler(uowFactory RestaurantUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the restaurant profile.
func (h *RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.UserID(), cmd.Name(), cmd.Address(), cmd.ImageURL(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
