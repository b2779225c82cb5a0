package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"gorm.io/gorm"
)

// ValidatePromoQueryHandler checks a promo code for a customer and explains
// rejections. The same window/minimum/clamping rules used at checkout apply
// here, so a code this query accepts cannot silently fail minutes later for
// the same cart.
type ValidatePromoQueryHandler struct {
	db *gorm.DB
}

// NewValidatePromoQueryHandler creates a handler for promo pre-validation.
func NewValidatePromoQueryHandler(db *gorm.DB) ValidatePromoQueryHandler {
	return ValidatePromoQueryHandler{db: db}
}

// Handle evaluates the code against the cart total.
func (h ValidatePromoQueryHandler) Handle(
	ctx context.Context,
	query ValidatePromoQuery,
) (ValidatePromoResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidatePromoResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			discount_type,
			discount_value,
			min_order,
			is_active,
			valid_from,
			valid_until
		FROM promotions
		WHERE code = ? AND restaurant_id = ?
	`, query.Code(), query.RestaurantID().Bytes()).Row()

	var (
		discountType  int
		discountValue int64
		minOrder      int64
		isActive      bool
		validFrom     time.Time
		validUntil    time.Time
	)

	err := row.Scan(&discountType, &discountValue, &minOrder, &isActive, &validFrom, &validUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return ValidatePromoResponse{Reason: "promo code not found or no longer valid"}, nil
	}
	if err != nil {
		return ValidatePromoResponse{}, err
	}

	minOrderAmount, err := kernel.NewMoney(minOrder)
	if err != nil {
		return ValidatePromoResponse{}, err
	}

	promo, err := promotion.NewPromotion(
		kernel.NewUUID(), query.RestaurantID(), query.Code(), "",
		promotion.DiscountType(discountType), discountValue,
		minOrderAmount, isActive, validFrom, validUntil,
	)
	if err != nil {
		return ValidatePromoResponse{}, err
	}

	now := time.Now()
	if !promo.IsValidAt(now) {
		return ValidatePromoResponse{Reason: "promo code not found or no longer valid"}, nil
	}

	if promo.IsBelowMinOrder(query.OrderTotal()) {
		return ValidatePromoResponse{
			Reason: fmt.Sprintf("minimum order of %s not met", promo.MinOrder()),
		}, nil
	}

	discount, ok := promo.Evaluate(query.OrderTotal(), now)
	if !ok {
		return ValidatePromoResponse{Reason: "promo code not found or no longer valid"}, nil
	}

	return ValidatePromoResponse{
		Valid:          true,
		DiscountAmount: discount.Amount(),
	}, nil
}
