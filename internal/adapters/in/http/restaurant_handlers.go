package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/promotion"

	"github.com/labstack/echo/v4"
)

// NewRestaurant is the restaurant registration body.
type NewRestaurant struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
}

// RestaurantProfile is the owner's view of their restaurant.
type RestaurantProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
	IsOpen   bool   `json:"is_open"`
}

// NewMenuItem is the menu item creation body.
type NewMenuItem struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category"`
	IsVegetarian bool   `json:"is_vegetarian"`
	IsSpicy      bool   `json:"is_spicy"`
	Stock        int    `json:"stock"`
}

// MenuItemUpdate is the menu item edit body. Availability is explicit so
// the owner can pull an item while keeping its stock.
type MenuItemUpdate struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	ImageURL     string `json:"image_url"`
	Category     string `json:"category"`
	IsVegetarian bool   `json:"is_vegetarian"`
	IsSpicy      bool   `json:"is_spicy"`
	Stock        int    `json:"stock"`
	IsAvailable  bool   `json:"is_available"`
}

// NewPromotion is the promotion creation body. Timestamps are RFC 3339.
type NewPromotion struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int64  `json:"discount_value"`
	MinOrder      int64  `json:"min_order"`
	ValidFrom     string `json:"valid_from"`
	ValidUntil    string `json:"valid_until"`
}

// OrderStatusUpdate carries the status a restaurant moves an order to.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// RestaurantStats aggregates the restaurant's delivered business.
type RestaurantStats struct {
	DeliveredOrders int   `json:"delivered_orders"`
	Revenue         int64 `json:"revenue"`
}

// callerRestaurant resolves the caller's restaurant profile. On failure
// the error response is already written and ok is false.
func (s *Server) callerRestaurant(ctx echo.Context) (queries.RestaurantProfileResponse, bool) {
	uid, err := userID(ctx)
	if err != nil {
		_ = badRequest(ctx, "invalid caller identity: "+err.Error())
		return queries.RestaurantProfileResponse{}, false
	}

	query, err := queries.NewGetRestaurantProfileQuery(uid)
	if err != nil {
		_ = respondError(ctx, err)
		return queries.RestaurantProfileResponse{}, false
	}

	profile, err := s.handlers.GetRestaurantProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		_ = respondError(ctx, err)
		return queries.RestaurantProfileResponse{}, false
	}

	return profile, true
}

// RegisterRestaurant handles POST /api/v1/restaurant.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid caller identity: "+err.Error())
	}

	var req NewRestaurant
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(
		restaurantID, uid, req.Name, req.Address, req.ImageURL,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": restaurantID.String()})
}

// GetMyRestaurant handles GET /api/v1/restaurant.
func (s *Server) GetMyRestaurant(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	return ctx.JSON(http.StatusOK, RestaurantProfile{
		ID:       profile.ID.String(),
		Name:     profile.Name,
		Address:  profile.Address,
		ImageURL: profile.ImageURL,
		IsOpen:   profile.IsOpen,
	})
}

// ToggleRestaurantOpen handles POST /api/v1/restaurant/toggle-open.
func (s *Server) ToggleRestaurantOpen(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewToggleRestaurantOpenCommand(profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	isOpen, err := s.handlers.ToggleRestaurantOpen.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"is_open": isOpen})
}

// ListRestaurantOrders handles GET /api/v1/restaurant/orders.
func (s *Server) ListRestaurantOrders(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetRestaurantOrdersQuery(profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetRestaurantOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// UpdateOrderStatus handles PATCH /api/v1/restaurant/orders/:orderID/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req OrderStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	next, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, profile.ID, next)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderPaid handles POST /api/v1/restaurant/orders/:orderID/paid.
func (s *Server) MarkOrderPaid(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMenuItem handles POST /api/v1/restaurant/menu.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	var req NewMenuItem
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		itemID, profile.ID,
		req.Name, req.Description, price, req.ImageURL, req.Category,
		req.IsVegetarian, req.IsSpicy, req.Stock,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/restaurant/menu/:itemID.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	var req MenuItemUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, profile.ID,
		req.Name, req.Description, price, req.ImageURL, req.Category,
		req.IsVegetarian, req.IsSpicy, req.Stock, req.IsAvailable,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/restaurant/menu/:itemID.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	itemID, err := pathUUID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID, profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePromotion handles POST /api/v1/restaurant/promotions.
func (s *Server) CreatePromotion(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	var req NewPromotion
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	discountType, err := promotion.DiscountTypeFromString(req.DiscountType)
	if err != nil {
		return respondError(ctx, err)
	}

	minOrder, err := kernel.NewMoney(req.MinOrder)
	if err != nil {
		return respondError(ctx, err)
	}

	validFrom, err := time.Parse(timeFormat, req.ValidFrom)
	if err != nil {
		return badRequest(ctx, "invalid valid_from timestamp")
	}

	validUntil, err := time.Parse(timeFormat, req.ValidUntil)
	if err != nil {
		return badRequest(ctx, "invalid valid_until timestamp")
	}

	promotionID := kernel.NewUUID()
	cmd, err := commands.NewCreatePromotionCommand(
		promotionID, profile.ID,
		req.Code, req.Description, discountType, req.DiscountValue,
		minOrder, validFrom, validUntil,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreatePromotion.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": promotionID.String()})
}

// GetRestaurantStats handles GET /api/v1/restaurant/stats.
func (s *Server) GetRestaurantStats(ctx echo.Context) error {
	profile, ok := s.callerRestaurant(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetRestaurantStatsQuery(profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.handlers.GetRestaurantStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestaurantStats{
		DeliveredOrders: stats.DeliveredOrders,
		Revenue:         stats.Revenue,
	})
}
