package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Money is a value object for a non-negative monetary amount expressed in
// minor currency units. It is immutable; arithmetic returns new values.
//
// The zero value represents zero money and is valid. Negative amounts are
// rejected at construction, so an Order's totals can never go below zero.
type Money struct {
	amount int64
}

// NewMoney creates a Money value, rejecting negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Subtract returns m minus other, or an error when the result would be
// negative.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("cannot subtract %d from %d", other.amount, m.amount),
		)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// Percent returns the given percentage of the amount, truncated to whole
// minor units.
func (m Money) Percent(value int64) Money {
	return Money{amount: m.amount * value / 100}
}

// Min returns the smaller of two amounts.
func (m Money) Min(other Money) Money {
	if other.amount < m.amount {
		return other
	}
	return m
}

// IsLess reports whether m is strictly smaller than other.
func (m Money) IsLess(other Money) bool {
	return m.amount < other.amount
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
