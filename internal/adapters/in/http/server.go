// Package http exposes the actor gateways over REST. Each gateway is a
// thin echo handler set: it establishes the caller's identity from the
// X-User-ID header (authentication itself lives in front of this
// service), resolves the caller's owned profile where the role needs
// one, and dispatches to the application layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the authenticated caller's user id, set by the
// auth layer in front of this service.
const UserIDHeader = "X-User-ID"

// timeFormat is the wire format for timestamps.
const timeFormat = time.RFC3339

// Handlers bundles the application handlers the gateways dispatch to.
type Handlers struct {
	// Commands
	CreateOrder              commands.CreateOrderCommandHandler
	UpdateOrderStatus        commands.UpdateOrderStatusCommandHandler
	AcceptOrder              commands.AcceptOrderCommandHandler
	CompleteOrder            commands.CompleteOrderCommandHandler
	MarkOrderPaid            commands.MarkOrderPaidCommandHandler
	AddMenuItem              commands.AddMenuItemCommandHandler
	UpdateMenuItem           commands.UpdateMenuItemCommandHandler
	DeleteMenuItem           commands.DeleteMenuItemCommandHandler
	CreatePromotion          commands.CreatePromotionCommandHandler
	RegisterDriver           commands.RegisterDriverCommandHandler
	RegisterRestaurant       commands.RegisterRestaurantCommandHandler
	ToggleDriverAvailability commands.ToggleDriverAvailabilityCommandHandler
	ToggleRestaurantOpen     commands.ToggleRestaurantOpenCommandHandler

	// Queries
	GetOrder             queries.GetOrderQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetRestaurantOrders  queries.GetRestaurantOrdersQueryHandler
	GetReadyOrders       queries.GetReadyOrdersQueryHandler
	GetDriverOrders      queries.GetDriverOrdersQueryHandler
	GetMenu              queries.GetMenuQueryHandler
	GetRestaurants       queries.GetRestaurantsQueryHandler
	GetActivePromotions  queries.GetActivePromotionsQueryHandler
	ValidatePromo        queries.ValidatePromoQueryHandler
	GetRestaurantStats   queries.GetRestaurantStatsQueryHandler
	GetDriverStats       queries.GetDriverStatsQueryHandler
	GetRestaurantProfile queries.GetRestaurantProfileQueryHandler
	GetDriverProfile     queries.GetDriverProfileQueryHandler
}

// Server hosts the customer, restaurant and driver gateways.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires the gateway routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Customer gateway
	api.GET("/restaurants", s.ListRestaurants)
	api.GET("/restaurants/:restaurantID/menu", s.GetRestaurantMenu)
	api.GET("/restaurants/:restaurantID/promotions", s.ListActivePromotions)
	api.POST("/restaurants/:restaurantID/promotions/validate", s.ValidatePromoCode)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListMyOrders)
	api.GET("/orders/:orderID", s.GetMyOrder)

	// Restaurant gateway, scoped to the caller's own restaurant.
	restaurant := api.Group("/restaurant")
	restaurant.POST("", s.RegisterRestaurant)
	restaurant.GET("", s.GetMyRestaurant)
	restaurant.POST("/toggle-open", s.ToggleRestaurantOpen)
	restaurant.GET("/orders", s.ListRestaurantOrders)
	restaurant.PATCH("/orders/:orderID/status", s.UpdateOrderStatus)
	restaurant.POST("/orders/:orderID/paid", s.MarkOrderPaid)
	restaurant.POST("/menu", s.AddMenuItem)
	restaurant.PUT("/menu/:itemID", s.UpdateMenuItem)
	restaurant.DELETE("/menu/:itemID", s.DeleteMenuItem)
	restaurant.POST("/promotions", s.CreatePromotion)
	restaurant.GET("/stats", s.GetRestaurantStats)

	// Driver gateway, scoped to the caller's own driver profile.
	driver := api.Group("/driver")
	driver.POST("", s.RegisterDriver)
	driver.GET("", s.GetMyDriverProfile)
	driver.POST("/toggle-availability", s.ToggleDriverAvailability)
	driver.GET("/orders/ready", s.ListReadyOrders)
	driver.GET("/orders", s.ListDriverOrders)
	driver.POST("/orders/:orderID/accept", s.AcceptOrder)
	driver.POST("/orders/:orderID/complete", s.CompleteOrder)
	driver.GET("/stats", s.GetDriverStats)
}

// Error is the wire shape of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates application and domain errors to HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, menu.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderNotReady),
		errors.Is(err, order.ErrOrderAlreadyAssigned),
		errors.Is(err, order.ErrOrderIsTerminal):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// userID extracts the caller identity from the request headers.
func userID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return kernel.UUID{}, errors.New("missing " + UserIDHeader + " header")
	}
	return kernel.UUIDFromString(raw)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// OrderLine is the wire shape of one line in an order.
type OrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Note       string `json:"note,omitempty"`
}

// Order is the wire shape shared by every order listing.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	RestaurantID    string      `json:"restaurant_id"`
	DriverID        *string     `json:"driver_id,omitempty"`
	Status          string      `json:"status"`
	TotalAmount     int64       `json:"total_amount"`
	DiscountAmount  int64       `json:"discount_amount"`
	PromoCode       *string     `json:"promo_code,omitempty"`
	PaymentStatus   string      `json:"payment_status"`
	DeliveryAddress string      `json:"delivery_address"`
	Lines           []OrderLine `json:"lines"`
}

func orderToWire(o queries.OrderResponse) Order {
	lines := make([]OrderLine, len(o.Lines))
	for j, l := range o.Lines {
		lines[j] = OrderLine{
			MenuItemID: l.MenuItemID.String(),
			Quantity:   l.Quantity,
			Price:      l.Price,
			Note:       l.Note,
		}
	}

	var driverID *string
	if o.DriverID != nil {
		id := o.DriverID.String()
		driverID = &id
	}

	return Order{
		ID:              o.ID.String(),
		CustomerID:      o.CustomerID.String(),
		RestaurantID:    o.RestaurantID.String(),
		DriverID:        driverID,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		DiscountAmount:  o.DiscountAmount,
		PromoCode:       o.PromoCode,
		PaymentStatus:   o.PaymentStatus,
		DeliveryAddress: o.DeliveryAddress,
		Lines:           lines,
	}
}

func ordersToWire(orders []queries.OrderResponse) []Order {
	wire := make([]Order, len(orders))
	for i, o := range orders {
		wire[i] = orderToWire(o)
	}
	return wire
}
