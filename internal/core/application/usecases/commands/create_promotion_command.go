package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreatePromotionCommandIsNotConstructed = errors.New(
	"CreatePromotionCommand must be created via NewCreatePromotionCommand constructor",
)

// CreatePromotionCommand represents a restaurant publishing a promo code.
type CreatePromotionCommand struct { //nolint:recvcheck //using for validation
	promotionID   kernel.UUID
	restaurantID  kernel.UUID
	code          string
	description   string
	discountType  promotion.DiscountType
	discountValue int64
	minOrder      kernel.Money
	validFrom     time.Time
	validUntil    time.Time

	guard guard.ConstructorGuard
}

// NewCreatePromotionCommand creates a command to publish a promotion.
func NewCreatePromotionCommand(
	promotionID kernel.UUID,
	restaurantID kernel.UUID,
	code string,
	description string,
	discountType promotion.DiscountType,
	discountValue int64,
	minOrder kernel.Money,
	validFrom time.Time,
	validUntil time.Time,
) (CreatePromotionCommand, error) {
	cmd := CreatePromotionCommand{
		description:   description,
		discountValue: discountValue,
		minOrder:      minOrder,
		validFrom:     validFrom,
		validUntil:    validUntil,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPromotionID(promotionID),
		cmd.setRestaurantID(restaurantID),
		cmd.setCode(code),
		cmd.setDiscountType(discountType),
	); err != nil {
		return CreatePromotionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePromotionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePromotionCommandIsNotConstructed)
}

// PromotionID returns the identifier minted for the new promotion.
func (c CreatePromotionCommand) PromotionID() kernel.UUID { return c.promotionID }

// RestaurantID returns the publishing restaurant's identifier.
func (c CreatePromotionCommand) RestaurantID() kernel.UUID { return c.restaurantID }

// Code returns the promo code.
func (c CreatePromotionCommand) Code() string { return c.code }

// Description returns the human-readable promotion text.
func (c CreatePromotionCommand) Description() string { return c.description }

// DiscountType returns how the discount value is interpreted.
func (c CreatePromotionCommand) DiscountType() promotion.DiscountType { return c.discountType }

// DiscountValue returns the raw discount value.
func (c CreatePromotionCommand) DiscountValue() int64 { return c.discountValue }

// MinOrder returns the minimum qualifying pre-discount total.
func (c CreatePromotionCommand) MinOrder() kernel.Money { return c.minOrder }

// ValidFrom returns the start of the validity window.
func (c CreatePromotionCommand) ValidFrom() time.Time { return c.validFrom }

// ValidUntil returns the end of the validity window.
func (c CreatePromotionCommand) ValidUntil() time.Time { return c.validUntil }

func (c *CreatePromotionCommand) setPromotionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.promotionID = id
	return nil
}

func (c *CreatePromotionCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreatePromotionCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *CreatePromotionCommand) setDiscountType(t promotion.DiscountType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.discountType = t
	return nil
}
