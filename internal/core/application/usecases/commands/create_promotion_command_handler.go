package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/promotion"
)

// CreatePromotionCommandHandler handles promotion publication. A new
// promotion starts active; the expiry sweep deactivates it after its
// validity window ends.
type CreatePromotionCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewCreatePromotionCommandHandler creates a handler for promotion publication.
func NewCreatePromotionCommandHandler(uowFactory PromotionUoWFactory) CreatePromotionCommandHandler {
	return CreatePromotionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates and persists the promotion.
func (h *CreatePromotionCommandHandler) Handle(ctx context.Context, cmd CreatePromotionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	promo, err := promotion.NewPromotion(
		cmd.PromotionID(),
		cmd.RestaurantID(),
		cmd.Code(),
		cmd.Description(),
		cmd.DiscountType(),
		cmd.DiscountValue(),
		cmd.MinOrder(),
		true,
		cmd.ValidFrom(),
		cmd.ValidUntil(),
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

	if err = uow.PromotionRepository().Add(ctx, promo); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
