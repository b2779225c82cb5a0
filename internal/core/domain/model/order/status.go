package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderNotReady is returned when a driver tries to accept an order
	// that is not in the ready status.
	ErrOrderNotReady = errors.New("order is not ready for pickup")

	// ErrOrderIsTerminal is returned when a transition is attempted out of
	// a delivered or cancelled order.
	ErrOrderIsTerminal = errors.New("order is in a terminal status")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──┬─> confirmed ─┬─> ready ──> on_the_way ──> delivered
//	          │   accepted   │
//	          │   cooking    │
//	          └──────────────┘
//	(restaurant statuses are free-form among themselves unless strict
//	 mode is enabled; cancelled can be reached from any kitchen status)
//
// delivered and cancelled are terminal. Driver transitions (ready ->
// on_the_way -> delivered) are always enforced regardless of strictness.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	Pending

	// Confirmed indicates the restaurant has seen the order.
	Confirmed

	// Accepted indicates the restaurant has taken the order into its queue.
	Accepted

	// Cooking indicates the order is being prepared.
	Cooking

	// Ready indicates the order awaits driver pickup.
	Ready

	// OnTheWay indicates a driver has picked up the order.
	OnTheWay

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal abort status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Accepted:  "accepted",
		Cooking:   "cooking",
		Ready:     "ready",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Accepted:  "accepted",
		Cooking:   "cooking",
		Ready:     "ready",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire/storage representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined enum values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase storage representation of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// kitchenTransitions is the explicit transition table used in strict mode
// for restaurant-driven updates. The source system imposed no ordering, so
// strictness is opt-in.
func kitchenTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Accepted, Cooking, Ready, Cancelled},
		Confirmed: {Accepted, Cooking, Ready, Cancelled},
		Accepted:  {Cooking, Ready, Cancelled},
		Cooking:   {Ready, Cancelled},
		Ready:     {Cancelled},
	}
}

// Update validates a restaurant-driven transition to next.
//
// In the default (non-strict) mode any valid status value is accepted as
// long as the current status is not terminal. In strict mode the explicit
// kitchen transition table applies.
//
// Returns:
//   - (next, nil) when the transition is allowed
//   - (0, ErrOrderIsTerminal) when the current status permits no transitions
//   - (0, error) when next is not a valid status or the table forbids it
func (s Status) Update(next Status, strict bool) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, ErrOrderIsTerminal
	}

	if !strict {
		return next, nil
	}

	for _, allowed := range kitchenTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot move from %s to %s", s.String(), next.String()),
	)
}

// AcceptPickup transitions the status to OnTheWay.
//
// Valid only from Ready; every other status returns ErrOrderNotReady.
// Used by Order.AcceptByDriver to enforce the driver pickup guard.
func (s Status) AcceptPickup() (Status, error) {
	if s != Ready {
		return 0, ErrOrderNotReady
	}

	return OnTheWay, nil
}

// CompleteDelivery transitions the status to Delivered.
//
// Valid only from OnTheWay. Delivered is terminal, so a second completion
// attempt fails here.
func (s Status) CompleteDelivery() (Status, error) {
	if s != OnTheWay {
		if s.IsTerminal() {
			return 0, ErrOrderIsTerminal
		}
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", s.String()),
		)
	}

	return Delivered, nil
}
