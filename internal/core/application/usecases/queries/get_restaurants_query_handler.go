package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler reads the restaurant directory.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listings.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle returns restaurants sorted by name.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			address,
			image_url,
			is_open
		FROM restaurants
	`
	if query.OpenOnly() {
		sql += " WHERE is_open"
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var (
			resp RestaurantResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Address, &resp.ImageURL, &resp.IsOpen); err != nil {
			return nil, err
		}

		restID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restID
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
