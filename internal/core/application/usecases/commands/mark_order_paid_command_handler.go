package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// MarkOrderPaidCommandHandler records payment on one of the calling
// restaurant's orders.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for payment recording.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the order paid. Idempotent: paying an already paid order is
// a no-op, not an error.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.RestaurantID().IsEqual(cmd.RestaurantID()) {
		return errs.NewForbiddenErrorWithCause("orderID",
			fmt.Errorf("order %s does not belong to restaurant %s", cmd.OrderID(), cmd.RestaurantID()))
	}

	aggregate.MarkPaid()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
