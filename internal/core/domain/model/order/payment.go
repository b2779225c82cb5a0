package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// PaymentStatus is the binary paid/unpaid flag on an order. There is no
// gateway integration; the restaurant flips it when cash changes hands.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unpaid is the initial payment status of every order.
	Unpaid

	// Paid indicates the restaurant has marked the order settled.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		Unpaid:         "unpaid",
		Paid:           "paid",
	}
}

// PaymentStatusFromString parses the storage representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "unpaid":
		return Unpaid, nil
	case "paid":
		return Paid, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", s),
		)
	}
}

// Validate checks that the PaymentStatus is a defined enum value.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the lowercase storage representation.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
