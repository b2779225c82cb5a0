package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// AcceptOrderCommandHandler handles drivers claiming ready orders.
//
// The locked read inside the transaction is what makes claiming
// first-come-first-served: two drivers racing for the same order queue on
// the row lock, and the loser's read returns the winner's committed
// assignment, failing the claim with ErrOrderAlreadyAssigned.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order claiming.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim: the order must be in "ready" status and not
// yet assigned to any driver. On success the order moves to "on_the_way"
// and the per-order topic is notified.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = aggregate.AcceptByDriver(cmd.DriverID()); err != nil {
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
