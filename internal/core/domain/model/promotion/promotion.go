// Package promotion contains the Promotion entity and the pure discount
// evaluator used at order creation and in the customer-facing pre-check.
package promotion

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrPromotionIsNotConstructed is returned when a Promotion instance was
// not created through NewPromotion.
var ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")

// DiscountType selects how a promotion's value is interpreted.
type DiscountType int

const (
	// DiscountUnknown represents an invalid discount type.
	DiscountUnknown DiscountType = iota

	// Percent interprets the value as a percentage of the pre-discount total.
	Percent

	// Fixed interprets the value as an absolute amount in minor units.
	Fixed
)

// DiscountTypeFromString parses the storage representation of a discount type.
func DiscountTypeFromString(s string) (DiscountType, error) {
	switch s {
	case "percent":
		return Percent, nil
	case "fixed":
		return Fixed, nil
	default:
		return DiscountUnknown, errs.NewValueIsInvalidErrorWithCause(
			"discount type is invalid",
			fmt.Errorf("%q is not a valid discount type", s),
		)
	}
}

// Validate checks that the DiscountType is a defined enum value.
func (d DiscountType) Validate() error {
	if d != Percent && d != Fixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount type is invalid",
			fmt.Errorf("%d is not a valid discount type", d),
		)
	}
	return nil
}

// String returns the lowercase storage representation.
func (d DiscountType) String() string {
	switch d {
	case Percent:
		return "percent"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Promotion is a restaurant-owned discount code with a validity window and
// minimum order threshold. Read-only from the lifecycle engine's
// perspective during order creation; the expiry sweep job deactivates it
// once the window closes.
type Promotion struct {
	id            kernel.UUID
	restaurantID  kernel.UUID
	code          string
	description   string
	discountType  DiscountType
	discountValue int64
	minOrder      kernel.Money
	isActive      bool
	validFrom     time.Time
	validUntil    time.Time

	isConstructed bool
}

// NewPromotion creates a promotion with validation.
func NewPromotion(
	id kernel.UUID,
	restaurantID kernel.UUID,
	code string,
	description string,
	discountType DiscountType,
	discountValue int64,
	minOrder kernel.Money,
	isActive bool,
	validFrom time.Time,
	validUntil time.Time,
) (*Promotion, error) {
	promo := &Promotion{
		description:   description,
		minOrder:      minOrder,
		isActive:      isActive,
		validFrom:     validFrom,
		validUntil:    validUntil,
		isConstructed: true,
	}

	if err := errors.Join(
		promo.setID(id),
		promo.setRestaurantID(restaurantID),
		promo.setCode(code),
		promo.setDiscount(discountType, discountValue),
	); err != nil {
		return nil, err
	}

	return promo, nil
}

// Validate ensures the Promotion was created via NewPromotion.
func (p *Promotion) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPromotionIsNotConstructed
	}
	return nil
}

// ID returns the promotion's unique identifier.
func (p *Promotion) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the owning restaurant's identifier.
func (p *Promotion) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Code returns the promo code (unique per restaurant).
func (p *Promotion) Code() string {
	return p.code
}

// Description returns the promotion's description.
func (p *Promotion) Description() string {
	return p.description
}

// DiscountType returns how the value is interpreted.
func (p *Promotion) DiscountType() DiscountType {
	return p.discountType
}

// DiscountValue returns the raw discount value (a percentage for Percent,
// minor units for Fixed).
func (p *Promotion) DiscountValue() int64 {
	return p.discountValue
}

// MinOrder returns the minimum pre-discount total for the promotion to apply.
func (p *Promotion) MinOrder() kernel.Money {
	return p.minOrder
}

// IsActive reports whether the promotion is switched on.
func (p *Promotion) IsActive() bool {
	return p.isActive
}

// ValidFrom returns the start of the validity window.
func (p *Promotion) ValidFrom() time.Time {
	return p.validFrom
}

// ValidUntil returns the end of the validity window.
func (p *Promotion) ValidUntil() time.Time {
	return p.validUntil
}

// IsValidAt reports whether the promotion is active and within its window.
func (p *Promotion) IsValidAt(now time.Time) bool {
	return p.isActive && !now.Before(p.validFrom) && !now.After(p.validUntil)
}

// IsBelowMinOrder reports whether the given total misses the threshold.
func (p *Promotion) IsBelowMinOrder(preDiscountTotal kernel.Money) bool {
	return preDiscountTotal.IsLess(p.minOrder)
}

// Deactivate switches the promotion off. Used by the expiry sweep.
func (p *Promotion) Deactivate() {
	p.isActive = false
}

// Evaluate prices the promotion against an order context. Pure: no side
// effects, never fails.
//
// Returns (discount, applied). Not applied, with a zero discount, when
// the promotion is inactive, outside its validity window, or the total is
// below the minimum order. Percent discounts compute total*value/100,
// fixed discounts use the value directly; either way the result is clamped
// so it never exceeds the pre-discount total.
func (p *Promotion) Evaluate(preDiscountTotal kernel.Money, now time.Time) (kernel.Money, bool) {
	if !p.IsValidAt(now) || p.IsBelowMinOrder(preDiscountTotal) {
		return kernel.Money{}, false
	}

	var discount kernel.Money
	switch p.discountType {
	case Percent:
		discount = preDiscountTotal.Percent(p.discountValue)
	case Fixed:
		discount, _ = kernel.NewMoney(p.discountValue)
	default:
		return kernel.Money{}, false
	}

	return discount.Min(preDiscountTotal), true
}

func (p *Promotion) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Promotion) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.restaurantID = id
	return nil
}

func (p *Promotion) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	p.code = code
	return nil
}

func (p *Promotion) setDiscount(discountType DiscountType, value int64) error {
	if err := discountType.Validate(); err != nil {
		return err
	}
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount value is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	p.discountType = discountType
	p.discountValue = value
	return nil
}
