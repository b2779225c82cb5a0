// Package orderrepo persists order aggregates and their lines. It maps the
// domain model to relational rows and back; lines are written once at
// creation and never rewritten afterwards.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          int        `gorm:"index"`
	TotalAmount     int64
	DiscountAmount  int64
	PromoCode       *string
	PaymentStatus   int
	DeliveryAddress string
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the database row for one order line. Price is the unit
// price snapshot taken at submission time.
type OrderLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	Price      int64
	Note       string
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			Price:      line.Price().Amount(),
			Note:       line.Note(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DriverID:        driverID,
		Status:          int(aggregate.Status()),
		TotalAmount:     aggregate.TotalAmount().Amount(),
		DiscountAmount:  aggregate.DiscountAmount().Amount(),
		PromoCode:       aggregate.PromoCode(),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Lines:           lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	discountAmount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		driverID,
		dto.DeliveryAddress,
		lines,
		order.Status(dto.Status),
		totalAmount,
		discountAmount,
		dto.PromoCode,
		order.PaymentStatus(dto.PaymentStatus),
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Line{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(id, menuItemID, dto.Quantity, price, dto.Note)
}
