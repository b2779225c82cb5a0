package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrValidatePromoQueryIsNotConstructed = errors.New(
	"ValidatePromoQuery must be created via NewValidatePromoQuery constructor",
)

// ValidatePromoQuery pre-checks a promo code against a cart total before
// checkout. Unlike order creation, which degrades silently, this query
// exists to tell the customer why a code does not apply.
type ValidatePromoQuery struct {
	code         string
	restaurantID kernel.UUID
	orderTotal   kernel.Money

	guard guard.ConstructorGuard
}

// NewValidatePromoQuery creates a promo pre-validation query.
func NewValidatePromoQuery(code string, restaurantID kernel.UUID, orderTotal kernel.Money) (ValidatePromoQuery, error) {
	if code == "" {
		return ValidatePromoQuery{}, errs.NewValueIsRequiredError("code")
	}
	if err := restaurantID.Validate(); err != nil {
		return ValidatePromoQuery{}, err
	}

	return ValidatePromoQuery{
		code:         code,
		restaurantID: restaurantID,
		orderTotal:   orderTotal,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidatePromoQuery) Validate() error {
	return q.guard.Validate(ErrValidatePromoQueryIsNotConstructed)
}

// Code returns the promo code under validation.
func (q ValidatePromoQuery) Code() string { return q.code }

// RestaurantID returns the restaurant the code must belong to.
func (q ValidatePromoQuery) RestaurantID() kernel.UUID { return q.restaurantID }

// OrderTotal returns the cart's pre-discount total.
func (q ValidatePromoQuery) OrderTotal() kernel.Money { return q.orderTotal }

// ValidatePromoResponse reports whether the code applies and, when it does
// not, a human-readable reason.
type ValidatePromoResponse struct {
	Valid          bool
	Reason         string
	DiscountAmount int64
}
