package promorepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromotionRepository implements ports.PromotionRepository using GORM.
type GormPromotionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPromotionRepository creates a new GORM promotion repository.
func NewGormPromotionRepository(db *gorm.DB, tracker aggregateTracker) *GormPromotionRepository {
	return &GormPromotionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new promotion.
func (r *GormPromotionRepository) Add(ctx context.Context, aggregate *promotion.Promotion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves promotion changes, typically deactivation.
func (r *GormPromotionRepository) Update(ctx context.Context, aggregate *promotion.Promotion) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PromotionDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"description":    dto.Description,
		"discount_type":  dto.DiscountType,
		"discount_value": dto.DiscountValue,
		"min_order":      dto.MinOrder,
		"is_active":      dto.IsActive,
		"valid_from":     dto.ValidFrom,
		"valid_until":    dto.ValidUntil,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("promotion", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByCode looks a promotion up by code within one restaurant.
func (r *GormPromotionRepository) FindByCode(ctx context.Context, code string, restaurantID kernel.UUID) (*promotion.Promotion, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dto PromotionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "code = ? AND restaurant_id = ?", code, restaurantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promo code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetExpiredActive retrieves active promotions whose window ended before now.
func (r *GormPromotionRepository) GetExpiredActive(ctx context.Context, now time.Time) ([]*promotion.Promotion, error) {
	var dtos []PromotionDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "is_active AND valid_until < ?", now).Error
	if err != nil {
		return nil, err
	}

	promos := make([]*promotion.Promotion, 0, len(dtos))
	for _, dto := range dtos {
		promo, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		promos = append(promos, promo)
	}

	return promos, nil
}
