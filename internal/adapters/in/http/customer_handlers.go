package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Restaurant is the directory entry customers browse.
type Restaurant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
	IsOpen   bool   `json:"is_open"`
}

// MenuItem is the wire shape of one menu entry.
type MenuItem struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
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

// Promotion is the wire shape of an active promo code.
type Promotion struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discount_type"`
	DiscountValue int64  `json:"discount_value"`
	MinOrder      int64  `json:"min_order"`
	ValidFrom     string `json:"valid_from"`
	ValidUntil    string `json:"valid_until"`
}

// NewOrderLine is one cart position in an order submission.
type NewOrderLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	Note       string `json:"note"`
}

// NewOrder is the order submission body.
type NewOrder struct {
	RestaurantID    string         `json:"restaurant_id"`
	DeliveryAddress string         `json:"delivery_address"`
	PromoCode       string         `json:"promo_code"`
	Lines           []NewOrderLine `json:"lines"`
}

// ValidatePromoRequest asks whether a code would apply to a cart total.
type ValidatePromoRequest struct {
	Code       string `json:"code"`
	OrderTotal int64  `json:"order_total"`
}

// ValidatePromoResult reports the verdict with a human-readable reason.
type ValidatePromoResult struct {
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty"`
	DiscountAmount int64  `json:"discount_amount"`
}

// ListRestaurants handles GET /api/v1/restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	openOnly := ctx.QueryParam("open_only") == "true"

	restaurants, err := s.handlers.GetRestaurants.Handle(
		ctx.Request().Context(), queries.NewGetRestaurantsQuery(openOnly),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Restaurant, len(restaurants))
	for i, r := range restaurants {
		response[i] = Restaurant{
			ID:       r.ID.String(),
			Name:     r.Name,
			Address:  r.Address,
			ImageURL: r.ImageURL,
			IsOpen:   r.IsOpen,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:restaurantID/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	availableOnly := ctx.QueryParam("available_only") == "true"

	query, err := queries.NewGetMenuQuery(restaurantID, availableOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.handlers.GetMenu.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:           item.ID.String(),
			RestaurantID: item.RestaurantID.String(),
			Name:         item.Name,
			Description:  item.Description,
			Price:        item.Price,
			ImageURL:     item.ImageURL,
			Category:     item.Category,
			IsVegetarian: item.IsVegetarian,
			IsSpicy:      item.IsSpicy,
			Stock:        item.Stock,
			IsAvailable:  item.IsAvailable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListActivePromotions handles GET /api/v1/restaurants/:restaurantID/promotions.
func (s *Server) ListActivePromotions(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetActivePromotionsQuery(restaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	promos, err := s.handlers.GetActivePromotions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Promotion, len(promos))
	for i, p := range promos {
		response[i] = Promotion{
			ID:            p.ID.String(),
			Code:          p.Code,
			Description:   p.Description,
			DiscountType:  p.DiscountType,
			DiscountValue: p.DiscountValue,
			MinOrder:      p.MinOrder,
			ValidFrom:     p.ValidFrom.Format(timeFormat),
			ValidUntil:    p.ValidUntil.Format(timeFormat),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ValidatePromoCode handles POST /api/v1/restaurants/:restaurantID/promotions/validate.
func (s *Server) ValidatePromoCode(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	var req ValidatePromoRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	total, err := kernel.NewMoney(req.OrderTotal)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewValidatePromoQuery(req.Code, restaurantID, total)
	if err != nil {
		return respondError(ctx, err)
	}

	verdict, err := s.handlers.ValidatePromo.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ValidatePromoResult{
		Valid:          verdict.Valid,
		Reason:         verdict.Reason,
		DiscountAmount: verdict.DiscountAmount,
	})
}

// CreateOrder handles POST /api/v1/orders. The caller is the customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid caller identity: "+err.Error())
	}

	var req NewOrder
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	lines := make([]commands.OrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		menuItemID, idErr := kernel.UUIDFromString(l.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "invalid menu item id")
		}

		price, priceErr := kernel.NewMoney(l.Price)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}

		lines[i] = commands.OrderLineInput{
			MenuItemID: menuItemID,
			Quantity:   l.Quantity,
			Price:      price,
			Note:       l.Note,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID, req.DeliveryAddress, lines, req.PromoCode,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	// Respond with the committed order, lines and computed totals included,
	// so the client does not need a follow-up fetch.
	query, err := queries.NewGetOrderQuery(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToWire(created))
}

// GetMyOrder handles GET /api/v1/orders/:orderID. The caller is the
// customer; someone else's order reads as not found.
func (s *Server) GetMyOrder(ctx echo.Context) error {
	customerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid caller identity: "+err.Error())
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToWire(resp))
}

// ListMyOrders handles GET /api/v1/orders. The caller is the customer.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	customerID, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid caller identity: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}
