package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one position of an order: a menu item reference, a quantity and
// the unit price captured at order time. The price is an immutable snapshot;
// later menu price edits do not affect existing orders.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	price      kernel.Money
	note       string

	isConstructed bool
}

// NewLine creates an order line with validation.
// Quantity must be positive; the price snapshot is taken as submitted
// (client-trusted, see package docs).
func NewLine(id kernel.UUID, menuItemID kernel.UUID, quantity int, price kernel.Money, note string) (Line, error) {
	line := Line{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setPrice(price),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was constructed via NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the referenced menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Price returns the unit price snapshot taken at order time.
func (l Line) Price() kernel.Money {
	return l.price
}

// Note returns the optional customer note for this line.
func (l Line) Note() string {
	return l.note
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() kernel.Money {
	subtotal, _ := l.price.MultiplyBy(l.quantity)
	return subtotal
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPrice(price kernel.Money) error {
	l.price = price
	return nil
}
