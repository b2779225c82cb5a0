// Package menurepo persists menu items, including the locked stock read the
// checkout path depends on.
package menurepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO is the database row for a menu item.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Description  string
	Price        int64
	ImageURL     string
	Category     string
	IsVegetarian bool
	IsSpicy      bool
	Stock        int
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price().Amount(),
		ImageURL:     item.ImageURL(),
		Category:     item.Category(),
		IsVegetarian: item.IsVegetarian(),
		IsSpicy:      item.IsSpicy(),
		Stock:        item.Stock(),
		IsAvailable:  item.IsAvailable(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		dto.Description,
		price,
		dto.ImageURL,
		dto.Category,
		dto.IsVegetarian,
		dto.IsSpicy,
		dto.Stock,
		dto.IsAvailable,
	)
}
