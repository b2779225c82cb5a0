// Package driverrepo persists driver profiles.
package driverrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the database row for a driver profile.
type DriverDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VehiclePlate string
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		VehiclePlate: aggregate.VehiclePlate(),
		IsAvailable:  aggregate.IsAvailable(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, userID, dto.VehiclePlate, dto.IsAvailable)
}
