package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// UpdateMenuItemCommandHandler handles menu item edits. Only the owning
// restaurant may edit an item.
//
// The item is read under a row lock so an edit racing a checkout's stock
// reservation cannot silently undo the reservation.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item edits.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit: content fields, stock, then availability.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	item, err := menuItemRepo.GetForUpdate(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !item.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return errs.NewForbiddenErrorWithCause("menuItemID",
			fmt.Errorf("menu item %s does not belong to restaurant %s", cmd.MenuItemID(), cmd.RestaurantID()))
	}

	if err = item.UpdateDetails(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.ImageURL(),
		cmd.Category(),
		cmd.IsVegetarian(),
		cmd.IsSpicy(),
	); err != nil {
		return err
	}

	if err = item.SetStock(cmd.Stock()); err != nil {
		return err
	}

	if err = item.SetAvailability(cmd.IsAvailable()); err != nil {
		return err
	}

	if err = menuItemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
