// Package menu contains the MenuItem aggregate and the stock reservation
// rules of the inventory ledger.
//
// Stock is decremented only through Reserve, inside the same transaction as
// the order that consumes it. There is no compensating increment: cancelled
// orders do not restore stock (see DESIGN.md for the recorded decision).
package menu

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was
	// not created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrInsufficientStock is returned when a reservation exceeds the
	// available quantity.
	ErrInsufficientStock = errors.New("insufficient stock for menu item")

	// ErrItemOutOfStock is returned when availability is switched on for an
	// item with zero stock.
	ErrItemOutOfStock = errors.New("menu item is out of stock")
)

// MenuItem is the unit of a restaurant's menu and the ledger entry for its
// stock. Stock mutations from order creation and content edits from
// restaurant management go through the same aggregate, so the two paths
// cannot race destructively once the repository read is locked.
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	imageURL     string
	category     string
	isVegetarian bool
	isSpicy      bool
	stock        int
	isAvailable  bool

	isConstructed bool
}

// NewMenuItem creates a menu item with validation. A freshly created item
// is available when its initial stock is positive.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category string,
	isVegetarian bool,
	isSpicy bool,
	stock int,
) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		imageURL:      imageURL,
		category:      category,
		isVegetarian:  isVegetarian,
		isSpicy:       isSpicy,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setStock(stock),
	); err != nil {
		return nil, err
	}

	item.price = price
	item.isAvailable = stock > 0
	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence, keeping the
// stored availability flag as-is (the owner may have switched it off while
// stock remained).
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category string,
	isVegetarian bool,
	isSpicy bool,
	stock int,
	isAvailable bool,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, restaurantID, name, description, price, imageURL, category, isVegetarian, isSpicy, stock)
	if err != nil {
		return nil, err
	}

	item.isAvailable = isAvailable
	return item, nil
}

// Validate ensures the MenuItem was created via a constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the item's description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current menu price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// ImageURL returns the item's image location.
func (m *MenuItem) ImageURL() string {
	return m.imageURL
}

// Category returns the item's menu category.
func (m *MenuItem) Category() string {
	return m.category
}

// IsVegetarian reports whether the item is vegetarian.
func (m *MenuItem) IsVegetarian() bool {
	return m.isVegetarian
}

// IsSpicy reports whether the item is spicy.
func (m *MenuItem) IsSpicy() bool {
	return m.isSpicy
}

// Stock returns the remaining stock count.
func (m *MenuItem) Stock() int {
	return m.stock
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// Reserve decrements stock by quantity for an order line.
//
// Fails with ErrInsufficientStock when stock < quantity. When the resulting
// stock reaches zero the availability flag is cleared. Must be called on an
// item read under the order-creation transaction's row lock; the caller is
// responsible for persisting the change in the same transaction.
func (m *MenuItem) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if m.stock < quantity {
		return fmt.Errorf("%w: %q has %d left, requested %d", ErrInsufficientStock, m.name, m.stock, quantity)
	}

	m.stock -= quantity
	if m.stock == 0 {
		m.isAvailable = false
	}
	return nil
}

// UpdateDetails applies a restaurant edit of the item's content fields.
// Stock and availability are managed separately.
func (m *MenuItem) UpdateDetails(
	name string,
	description string,
	price kernel.Money,
	imageURL string,
	category string,
	isVegetarian bool,
	isSpicy bool,
) error {
	if err := m.setName(name); err != nil {
		return err
	}

	m.description = description
	m.price = price
	m.imageURL = imageURL
	m.category = category
	m.isVegetarian = isVegetarian
	m.isSpicy = isSpicy
	return nil
}

// SetStock replaces the stock count (a restock or correction by the owner).
// Restocking a sold-out item makes it available again.
func (m *MenuItem) SetStock(stock int) error {
	if err := m.setStock(stock); err != nil {
		return err
	}

	if stock == 0 {
		m.isAvailable = false
	} else {
		m.isAvailable = true
	}
	return nil
}

// SetAvailability lets the owner toggle the flag independently of stock.
// Switching on requires stock on hand; switching off is always allowed.
func (m *MenuItem) SetAvailability(available bool) error {
	if available && m.stock == 0 {
		return ErrItemOutOfStock
	}

	m.isAvailable = available
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}
	m.stock = stock
	return nil
}
