package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler handles menu item removal. Only the owning
// restaurant may remove an item. Existing order lines keep their price and
// name snapshots, so history survives the deletion.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item removal.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the item after an ownership check.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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
	item, err := menuItemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !item.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return errs.NewForbiddenErrorWithCause("menuItemID",
			fmt.Errorf("menu item %s does not belong to restaurant %s", cmd.MenuItemID(), cmd.RestaurantID()))
	}

	if err = menuItemRepo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
