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

// GetRestaurantProfileQueryHandler resolves a user's restaurant profile.
// Gateways use it once per request to establish which restaurant the
// caller acts for.
type GetRestaurantProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantProfileQueryHandler creates a handler for profile lookups.
func NewGetRestaurantProfileQueryHandler(db *gorm.DB) GetRestaurantProfileQueryHandler {
	return GetRestaurantProfileQueryHandler{db: db}
}

// Handle finds the restaurant registered to the user account.
func (h GetRestaurantProfileQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantProfileQuery,
) (RestaurantProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantProfileResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			name,
			address,
			image_url,
			is_open
		FROM restaurants
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	var (
		resp   RestaurantProfileResponse
		id     uuid.UUID
		userID uuid.UUID
	)

	err := row.Scan(&id, &userID, &resp.Name, &resp.Address, &resp.ImageURL, &resp.IsOpen)
	if errors.Is(err, sql.ErrNoRows) {
		return RestaurantProfileResponse{}, errs.NewObjectNotFoundError(
			"restaurant profile", query.UserID().String(),
		)
	}
	if err != nil {
		return RestaurantProfileResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RestaurantProfileResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return RestaurantProfileResponse{}, err
	}

	return resp, nil
}
