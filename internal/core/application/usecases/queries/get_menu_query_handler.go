package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler reads a restaurant's menu items.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle returns the menu, grouped the way the owner arranged it.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			restaurant_id,
			name,
			description,
			price,
			image_url,
			category,
			is_vegetarian,
			is_spicy,
			stock,
			is_available
		FROM menu_items
		WHERE restaurant_id = ?
	`
	if query.AvailableOnly() {
		sql += " AND is_available"
	}
	sql += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sql, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		var (
			item         MenuItemResponse
			id           uuid.UUID
			restaurantID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&restaurantID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
			&item.Category,
			&item.IsVegetarian,
			&item.IsSpicy,
			&item.Stock,
			&item.IsAvailable,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ID = itemID
		item.RestaurantID = restID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
