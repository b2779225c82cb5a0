package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
)

// AddMenuItemCommandHandler handles menu item creation.
type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu item creation.
func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the menu item and persists it.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(
		cmd.MenuItemID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.Category(),
		cmd.IsVegetarian(),
		cmd.IsSpicy(),
		cmd.Stock(),
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

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
