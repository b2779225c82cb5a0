package menurepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuItemRepository implements ports.MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
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

// Update saves content edits and stock changes. Boolean and zero-valued
// columns are written explicitly so a sold-out item's stock actually lands
// as zero.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"description":   dto.Description,
		"price":         dto.Price,
		"image_url":     dto.ImageURL,
		"category":      dto.Category,
		"is_vegetarian": dto.IsVegetarian,
		"is_spicy":      dto.IsSpicy,
		"stock":         dto.Stock,
		"is_available":  dto.IsAvailable,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a menu item.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", id.String())
	}

	return nil
}

// Get retrieves a menu item by ID.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a menu item under SELECT ... FOR UPDATE. Concurrent
// reservations of the same item queue on the row lock, so the stock check
// and decrement act on the latest committed value. Only meaningful inside
// an open transaction.
func (r *GormMenuItemRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	return r.get(ctx, id, true)
}

func (r *GormMenuItemRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MenuItemDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByRestaurant retrieves all items of one restaurant's menu.
func (r *GormMenuItemRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*menu.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "restaurant_id = ?", restaurantID.Bytes()).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
