package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order placement: it reserves stock for
// every submitted line, applies an optional promotion and persists the order,
// all inside one transaction.
//
// Stock reservation and the order insert commit or roll back together: a
// failed reservation on the third line releases the first two. Items are
// locked in submitted line order, so two concurrent orders over the same
// items serialize on the first shared item instead of deadlocking against
// each other.
//
// An unknown, inactive or unqualified promo code never fails the order; the
// order simply commits without a discount. Explicit promo feedback belongs
// to the validation query, not to checkout.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// On success the new order is committed in "pending" status and the
// restaurant's order topic is notified post-commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines, err := buildLines(cmd.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.DeliveryAddress(),
		lines,
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

	menuItemRepo := uow.MenuItemRepository()
	for _, line := range cmd.Lines() {
		item, err := menuItemRepo.GetForUpdate(ctx, line.MenuItemID)
		if err != nil {
			return err
		}

		if err = item.Reserve(line.Quantity); err != nil {
			return err
		}

		if err = menuItemRepo.Update(ctx, item); err != nil {
			return err
		}
	}

	if cmd.PromoCode() != "" {
		if err = h.applyPromotion(ctx, uow, cmd, newOrder); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.RestaurantOrdersTopic(newOrder.RestaurantID().String()),
		newOrderEvent(newOrder))

	return nil
}

func (h *CreateOrderCommandHandler) applyPromotion(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
	newOrder *order.Order,
) error {
	promo, err := uow.PromotionRepository().FindByCode(ctx, cmd.PromoCode(), cmd.RestaurantID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	discount, ok := promo.Evaluate(newOrder.PreDiscountTotal(), time.Now())
	if !ok {
		return nil
	}

	return newOrder.ApplyPromotion(promo.Code(), discount)
}

func buildLines(inputs []OrderLineInput) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(inputs))
	for _, input := range inputs {
		line, err := order.NewLine(kernel.NewUUID(), input.MenuItemID, input.Quantity, input.Price, input.Note)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
