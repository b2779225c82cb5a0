package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when an order is created with an empty
	// item list.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrOrderAlreadyAssigned is returned when a driver tries to accept an
	// order that already has a driver.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a driver")
)

// Order is the aggregate root of the order lifecycle. It is created by a
// customer, mutated by restaurant (status, payment) and driver (status,
// assignment) actions, and never deleted.
//
// Invariants:
//   - at least one line; every line quantity is positive
//   - totalAmount = PreDiscountTotal() - discountAmount
//   - discountAmount never exceeds PreDiscountTotal()
//   - driverID is set exactly once, at pickup
//   - delivered and cancelled orders accept no further transitions
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	driverID        *kernel.UUID
	lines           []Line
	status          Status
	totalAmount     kernel.Money
	discountAmount  kernel.Money
	promoCode       *string
	paymentStatus   PaymentStatus
	deliveryAddress string

	isConstructed bool
}

// NewOrder creates a pending, unpaid order from the submitted lines.
// The total is the sum of line subtotals; apply a promotion afterwards with
// ApplyPromotion. Returns a validation error when any identifier is invalid,
// the address is empty, or the line list is empty.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	lines []Line,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		paymentStatus: Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryAddress(deliveryAddress),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.totalAmount = order.PreDiscountTotal()
	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules. Status, totals and assignment are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	deliveryAddress string,
	lines []Line,
	status Status,
	totalAmount kernel.Money,
	discountAmount kernel.Money,
	promoCode *string,
	paymentStatus PaymentStatus,
) (*Order, error) {
	if err := errors.Join(
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	order := &Order{
		status:          status,
		paymentStatus:   paymentStatus,
		totalAmount:     totalAmount,
		discountAmount:  discountAmount,
		promoCode:       promoCode,
		driverID:        driverID,
		deliveryAddress: deliveryAddress,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was created via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's ID, or nil before pickup.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Lines returns the order's lines in submission order.
func (o *Order) Lines() []Line {
	return o.lines
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the post-discount total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DiscountAmount returns the applied discount.
func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

// PromoCode returns the applied promo code, or nil when none was applied.
func (o *Order) PromoCode() *string {
	return o.promoCode
}

// PaymentStatus returns the current payment flag.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryAddress returns the customer's delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PreDiscountTotal returns the sum of line subtotals before any discount.
func (o *Order) PreDiscountTotal() kernel.Money {
	var total kernel.Money
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ApplyPromotion records a validated discount on the order.
//
// The discount is clamped so it never exceeds the pre-discount total, and
// the total is recomputed to maintain the bookkeeping invariant. Call at
// creation time only; promotions are not retrofitted onto live orders.
func (o *Order) ApplyPromotion(code string, discount kernel.Money) error {
	if code == "" {
		return errs.NewValueIsRequiredError("promo code")
	}

	preDiscount := o.PreDiscountTotal()
	clamped := discount.Min(preDiscount)

	total, err := preDiscount.Subtract(clamped)
	if err != nil {
		return err
	}

	o.discountAmount = clamped
	o.totalAmount = total
	o.promoCode = &code
	return nil
}

// AcceptByDriver assigns the order to a driver and moves it to on_the_way.
//
// Guards:
//   - the order must be exactly in ready status (ErrOrderNotReady)
//   - no driver may be assigned yet (ErrOrderAlreadyAssigned)
func (o *Order) AcceptByDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return ErrOrderAlreadyAssigned
	}

	newStatus, err := o.status.AcceptPickup()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// CompleteByDriver marks the order delivered.
//
// Only the driver holding the assignment may complete; anyone else gets a
// forbidden error. Delivered is terminal.
func (o *Order) CompleteByDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return errs.NewForbiddenError("order is not assigned to this driver")
	}

	newStatus, err := o.status.CompleteDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateStatus applies a restaurant-driven status change.
// Strictness controls whether the explicit kitchen transition table is
// enforced; see Status.Update.
func (o *Order) UpdateStatus(next Status, strict bool) error {
	newStatus, err := o.status.Update(next, strict)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPaid flips the payment flag to paid.
func (o *Order) MarkPaid() {
	o.paymentStatus = Paid
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
