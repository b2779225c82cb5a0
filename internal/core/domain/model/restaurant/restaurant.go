// Package restaurant contains the Restaurant entity, the ownership root for
// menu items, promotions and incoming orders.
package restaurant

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the merchant profile linked to a user account. Gateways
// resolve restaurant-for-user once per request and use the ID for ownership
// checks in the lifecycle engine.
type Restaurant struct {
	id       kernel.UUID
	userID   kernel.UUID
	name     string
	address  string
	imageURL string
	isOpen   bool

	isConstructed bool
}

// NewRestaurant creates a restaurant profile, open by default.
func NewRestaurant(id kernel.UUID, userID kernel.UUID, name string, address string, imageURL string) (*Restaurant, error) {
	r := &Restaurant{
		imageURL:      imageURL,
		isOpen:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID, userID kernel.UUID, name string, address string, imageURL string, isOpen bool,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, userID, name, address, imageURL)
	if err != nil {
		return nil, err
	}

	r.isOpen = isOpen
	return r, nil
}

// Validate ensures the Restaurant was created via a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// UserID returns the linked user account's identifier.
func (r *Restaurant) UserID() kernel.UUID {
	return r.userID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the restaurant's street address.
func (r *Restaurant) Address() string {
	return r.address
}

// ImageURL returns the restaurant's image location.
func (r *Restaurant) ImageURL() string {
	return r.imageURL
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

// ToggleOpen flips the open flag and returns the new value.
func (r *Restaurant) ToggleOpen() bool {
	r.isOpen = !r.isOpen
	return r.isOpen
}

// Owns reports whether the given user account owns this restaurant.
func (r *Restaurant) Owns(userID kernel.UUID) bool {
	return r.userID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.userID = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}
