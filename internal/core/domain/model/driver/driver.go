// Package driver contains the Driver aggregate. A driver's "busy" state is
// not stored here: it is derived from holding an active on_the_way order.
package driver

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver is the delivery-person profile linked to a user account. The
// availability flag is self-managed; assignment lives on the order side
// (Order.driver_id), never here.
type Driver struct {
	id           kernel.UUID
	userID       kernel.UUID
	vehiclePlate string
	isAvailable  bool

	isConstructed bool
}

// NewDriver creates a driver profile, available by default.
func NewDriver(id kernel.UUID, userID kernel.UUID, vehiclePlate string) (*Driver, error) {
	d := &Driver{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setVehiclePlate(vehiclePlate),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, userID kernel.UUID, vehiclePlate string, isAvailable bool) (*Driver, error) {
	d, err := NewDriver(id, userID, vehiclePlate)
	if err != nil {
		return nil, err
	}

	d.isAvailable = isAvailable
	return d, nil
}

// Validate ensures the Driver was created via a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the linked user account's identifier.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// VehiclePlate returns the registered vehicle identifier.
func (d *Driver) VehiclePlate() string {
	return d.vehiclePlate
}

// IsAvailable reports the self-managed availability flag.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// ToggleAvailability flips the availability flag and returns the new value.
func (d *Driver) ToggleAvailability() bool {
	d.isAvailable = !d.isAvailable
	return d.isAvailable
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.userID = id
	return nil
}

func (d *Driver) setVehiclePlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("vehicle plate")
	}
	d.vehiclePlate = plate
	return nil
}
