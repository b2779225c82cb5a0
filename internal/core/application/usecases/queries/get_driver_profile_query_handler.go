package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverProfileQueryHandler resolves a user's driver profile.
type GetDriverProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverProfileQueryHandler creates a handler for profile lookups.
func NewGetDriverProfileQueryHandler(db *gorm.DB) GetDriverProfileQueryHandler {
	return GetDriverProfileQueryHandler{db: db}
}

// Handle finds the driver profile registered to the user account.
func (h GetDriverProfileQueryHandler) Handle(
	ctx context.Context,
	query GetDriverProfileQuery,
) (DriverProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			vehicle_plate,
			is_available
		FROM drivers
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	var (
		resp   DriverProfileResponse
		id     uuid.UUID
		userID uuid.UUID
	)

	err := row.Scan(&id, &userID, &resp.VehiclePlate, &resp.IsAvailable)
	if errors.Is(err, sql.ErrNoRows) {
		return DriverProfileResponse{}, errs.NewObjectNotFoundError(
			"driver profile", query.UserID().String(),
		)
	}
	if err != nil {
		return DriverProfileResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DriverProfileResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return DriverProfileResponse{}, err
	}

	return resp, nil
}
