// Package promorepo persists promotions.
package promorepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/google/uuid"
)

// PromotionDTO is the database row for a promotion.
type PromotionDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index:idx_promotions_code,unique"`
	Code          string    `gorm:"index:idx_promotions_code,unique"`
	Description   string
	DiscountType  int
	DiscountValue int64
	MinOrder      int64
	IsActive      bool `gorm:"index"`
	ValidFrom     time.Time
	ValidUntil    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming to use "promotions".
func (PromotionDTO) TableName() string {
	return "promotions"
}

func fromDomain(promo *promotion.Promotion) PromotionDTO {
	return PromotionDTO{
		ID:            promo.ID().Bytes(),
		RestaurantID:  promo.RestaurantID().Bytes(),
		Code:          promo.Code(),
		Description:   promo.Description(),
		DiscountType:  int(promo.DiscountType()),
		DiscountValue: promo.DiscountValue(),
		MinOrder:      promo.MinOrder().Amount(),
		IsActive:      promo.IsActive(),
		ValidFrom:     promo.ValidFrom(),
		ValidUntil:    promo.ValidUntil(),
	}
}

func toDomain(dto PromotionDTO) (*promotion.Promotion, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	minOrder, err := kernel.NewMoney(dto.MinOrder)
	if err != nil {
		return nil, err
	}

	return promotion.NewPromotion(
		id,
		restaurantID,
		dto.Code,
		dto.Description,
		promotion.DiscountType(dto.DiscountType),
		dto.DiscountValue,
		minOrder,
		dto.IsActive,
		dto.ValidFrom,
		dto.ValidUntil,
	)
}
