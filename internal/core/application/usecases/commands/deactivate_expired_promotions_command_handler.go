package commands

import (
	"context"
	"time"
)

// DeactivateExpiredPromotionsCommandHandler sweeps active promotions whose
// validity window has passed and deactivates them in one transaction.
type DeactivateExpiredPromotionsCommandHandler struct {
	uowFactory PromotionUoWFactory
}

// NewDeactivateExpiredPromotionsCommandHandler creates a handler for the sweep.
func NewDeactivateExpiredPromotionsCommandHandler(uowFactory PromotionUoWFactory) DeactivateExpiredPromotionsCommandHandler {
	return DeactivateExpiredPromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates every expired promotion and returns how many it touched.
func (h *DeactivateExpiredPromotionsCommandHandler) Handle(ctx context.Context, cmd DeactivateExpiredPromotionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	promotionRepo := uow.PromotionRepository()
	expired, err := promotionRepo.GetExpiredActive(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	for _, promo := range expired {
		promo.Deactivate()
		if err = promotionRepo.Update(ctx, promo); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}
