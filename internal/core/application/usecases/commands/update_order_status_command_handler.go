package commands

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles kitchen-side status changes.
// Only the restaurant the order belongs to may move it. When the order
// reaches "ready" the handler additionally notifies the driver broadcast
// topic so idle drivers see the pickup opportunity.
type UpdateOrderStatusCommandHandler struct {
	uowFactory        OrderUoWFactory
	publisher         ports.EventPublisher
	strictTransitions bool
}

// NewUpdateOrderStatusCommandHandler creates a handler for kitchen status
// updates. With strictTransitions enabled, out-of-sequence moves such as
// "cooking" directly to "delivered" are rejected; otherwise any
// non-terminal order accepts any known status, matching how restaurant
// dashboards actually drive the flow.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	strictTransitions bool,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:        uowFactory,
		publisher:         publisher,
		strictTransitions: strictTransitions,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = aggregate.UpdateStatus(cmd.Next(), h.strictTransitions); err != nil {
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

	// Drivers discover pickups from the broadcast alone, so it carries the
	// whole order rather than the slim status patch.
	if aggregate.Status() == order.Ready {
		h.publisher.Publish(ctx, ports.TopicOrderReadyForPickup, newOrderEvent(aggregate))
	}

	return nil
}
