// Package restaurantrepo persists restaurant profiles.
package restaurantrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the database row for a restaurant profile.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name      string
	Address   string
	ImageURL  string
	IsOpen    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:       aggregate.ID().Bytes(),
		UserID:   aggregate.UserID().Bytes(),
		Name:     aggregate.Name(),
		Address:  aggregate.Address(),
		ImageURL: aggregate.ImageURL(),
		IsOpen:   aggregate.IsOpen(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, userID, dto.Name, dto.Address, dto.ImageURL, dto.IsOpen)
}
