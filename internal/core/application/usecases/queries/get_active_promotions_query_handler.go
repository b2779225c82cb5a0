package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActivePromotionsQueryHandler reads a restaurant's live promotions.
type GetActivePromotionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActivePromotionsQueryHandler creates a handler for live promo queries.
func NewGetActivePromotionsQueryHandler(db *gorm.DB) GetActivePromotionsQueryHandler {
	return GetActivePromotionsQueryHandler{db: db}
}

// Handle returns promotions that are active and within their window now.
func (h GetActivePromotionsQueryHandler) Handle(
	ctx context.Context,
	query GetActivePromotionsQuery,
) ([]PromotionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			description,
			discount_type,
			discount_value,
			min_order,
			valid_from,
			valid_until
		FROM promotions
		WHERE restaurant_id = ?
			AND is_active
			AND valid_from <= ?
			AND valid_until >= ?
		ORDER BY code
	`, query.RestaurantID().Bytes(), time.Now(), time.Now()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promos := make([]PromotionResponse, 0)
	for rows.Next() {
		var (
			resp         PromotionResponse
			id           uuid.UUID
			discountType int
		)

		if err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Description,
			&discountType,
			&resp.DiscountValue,
			&resp.MinOrder,
			&resp.ValidFrom,
			&resp.ValidUntil,
		); err != nil {
			return nil, err
		}

		promoID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = promoID
		resp.DiscountType = promotion.DiscountType(discountType).String()
		promos = append(promos, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return promos, nil
}
