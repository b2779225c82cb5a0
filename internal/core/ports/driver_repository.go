package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver profiles.
type DriverRepository interface {
	// Add persists a new driver profile.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists availability changes.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUser retrieves the driver profile linked to a user account.
	// Gateways call this once per request to resolve driver-for-user.
	GetByUser(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)
}
