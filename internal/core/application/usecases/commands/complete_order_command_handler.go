package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// CompleteOrderCommandHandler handles delivery completion. Only the driver
// the order is assigned to may complete it, and only from "on_the_way".
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteOrderCommandHandler creates a handler for delivery completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command. The order lands in the terminal
// "delivered" status and the per-order topic is notified.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.CompleteByDriver(cmd.DriverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.OrderTopic(aggregate.ID().String()), OrderStatusEvent{
		OrderID:      aggregate.ID().String(),
		RestaurantID: aggregate.RestaurantID().String(),
		Status:       aggregate.Status().String(),
	})

	return nil
}
