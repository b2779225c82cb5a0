package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// NewDriver is the driver registration body.
type NewDriver struct {
	VehiclePlate string `json:"vehicle_plate"`
}

// DriverProfile is the driver's view of their own profile.
type DriverProfile struct {
	ID           string `json:"id"`
	VehiclePlate string `json:"vehicle_plate"`
	IsAvailable  bool   `json:"is_available"`
}

// DriverStats aggregates the driver's delivered business.
type DriverStats struct {
	CompletedDeliveries int   `json:"completed_deliveries"`
	Earnings            int64 `json:"earnings"`
}

// callerDriver resolves the caller's driver profile. On failure the error
// response is already written and ok is false.
func (s *Server) callerDriver(ctx echo.Context) (queries.DriverProfileResponse, bool) {
	uid, err := userID(ctx)
	if err != nil {
		_ = badRequest(ctx, "invalid caller identity: "+err.Error())
		return queries.DriverProfileResponse{}, false
	}

	query, err := queries.NewGetDriverProfileQuery(uid)
	if err != nil {
		_ = respondError(ctx, err)
		return queries.DriverProfileResponse{}, false
	}

	profile, err := s.handlers.GetDriverProfile.Handle(ctx.Request().Context(), query)
	if err != nil {
		_ = respondError(ctx, err)
		return queries.DriverProfileResponse{}, false
	}

	return profile, true
}

// RegisterDriver handles POST /api/v1/driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	uid, err := userID(ctx)
	if err != nil {
		return badRequest(ctx, "invalid caller identity: "+err.Error())
	}

	var req NewDriver
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, uid, req.VehiclePlate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": driverID.String()})
}

// GetMyDriverProfile handles GET /api/v1/driver.
func (s *Server) GetMyDriverProfile(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	return ctx.JSON(http.StatusOK, DriverProfile{
		ID:           profile.ID.String(),
		VehiclePlate: profile.VehiclePlate,
		IsAvailable:  profile.IsAvailable,
	})
}

// ToggleDriverAvailability handles POST /api/v1/driver/toggle-availability.
func (s *Server) ToggleDriverAvailability(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewToggleDriverAvailabilityCommand(profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	isAvailable, err := s.handlers.ToggleDriverAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"is_available": isAvailable})
}

// ListReadyOrders handles GET /api/v1/driver/orders/ready. Every driver
// sees the same pool of unassigned ready orders.
func (s *Server) ListReadyOrders(ctx echo.Context) error {
	if _, ok := s.callerDriver(ctx); !ok {
		return nil
	}

	orders, err := s.handlers.GetReadyOrders.Handle(
		ctx.Request().Context(), queries.NewGetReadyOrdersQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// ListDriverOrders handles GET /api/v1/driver/orders. With active=true it
// returns the current delivery, otherwise the delivered history.
func (s *Server) ListDriverOrders(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	activeOnly := ctx.QueryParam("active") == "true"

	query, err := queries.NewGetDriverOrdersQuery(profile.ID, activeOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetDriverOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToWire(orders))
}

// AcceptOrder handles POST /api/v1/driver/orders/:orderID/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/driver/orders/:orderID/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverStats handles GET /api/v1/driver/stats.
func (s *Server) GetDriverStats(ctx echo.Context) error {
	profile, ok := s.callerDriver(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewGetDriverStatsQuery(profile.ID)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.handlers.GetDriverStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DriverStats{
		CompletedDeliveries: stats.CompletedDeliveries,
		Earnings:            stats.Earnings,
	})
}
