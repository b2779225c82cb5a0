package cmd

import (
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"log/slog"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, handlers and jobs together.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCompositionRoot creates the application object graph.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(), c.publisher, c.config.StrictStatusTransitions,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreatePromotionCommandHandler() commands.CreatePromotionCommandHandler {
	return commands.NewCreatePromotionCommandHandler(c.promotionUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateExpiredPromotionsCommandHandler() commands.DeactivateExpiredPromotionsCommandHandler {
	return commands.NewDeactivateExpiredPromotionsCommandHandler(c.promotionUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateToggleDriverAvailabilityCommandHandler() commands.ToggleDriverAvailabilityCommandHandler {
	return commands.NewToggleDriverAvailabilityCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	return commands.NewRegisterRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateToggleRestaurantOpenCommandHandler() commands.ToggleRestaurantOpenCommandHandler {
	return commands.NewToggleRestaurantOpenCommandHandler(c.restaurantUoWFactory())
}

// CreateHTTPHandlers bundles every gateway dependency for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:              c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:        c.CreateUpdateOrderStatusCommandHandler(),
		AcceptOrder:              c.CreateAcceptOrderCommandHandler(),
		CompleteOrder:            c.CreateCompleteOrderCommandHandler(),
		MarkOrderPaid:            c.CreateMarkOrderPaidCommandHandler(),
		AddMenuItem:              c.CreateAddMenuItemCommandHandler(),
		UpdateMenuItem:           c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:           c.CreateDeleteMenuItemCommandHandler(),
		CreatePromotion:          c.CreateCreatePromotionCommandHandler(),
		RegisterDriver:           c.CreateRegisterDriverCommandHandler(),
		RegisterRestaurant:       c.CreateRegisterRestaurantCommandHandler(),
		ToggleDriverAvailability: c.CreateToggleDriverAvailabilityCommandHandler(),
		ToggleRestaurantOpen:     c.CreateToggleRestaurantOpenCommandHandler(),

		GetOrder:             queries.NewGetOrderQueryHandler(c.gormDB),
		GetCustomerOrders:    queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		GetRestaurantOrders:  queries.NewGetRestaurantOrdersQueryHandler(c.gormDB),
		GetReadyOrders:       queries.NewGetReadyOrdersQueryHandler(c.gormDB),
		GetDriverOrders:      queries.NewGetDriverOrdersQueryHandler(c.gormDB),
		GetMenu:              queries.NewGetMenuQueryHandler(c.gormDB),
		GetRestaurants:       queries.NewGetRestaurantsQueryHandler(c.gormDB),
		GetActivePromotions:  queries.NewGetActivePromotionsQueryHandler(c.gormDB),
		ValidatePromo:        queries.NewValidatePromoQueryHandler(c.gormDB),
		GetRestaurantStats:   queries.NewGetRestaurantStatsQueryHandler(c.gormDB),
		GetDriverStats:       queries.NewGetDriverStatsQueryHandler(c.gormDB),
		GetRestaurantProfile: queries.NewGetRestaurantProfileQueryHandler(c.gormDB),
		GetDriverProfile:     queries.NewGetDriverProfileQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDeactivateExpiredPromotionsCommandHandler(), c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) promotionUoWFactory() commands.PromotionUoWFactory {
	return FuncPromotionUoWFactory(func() commands.PromotionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncPromotionUoWFactory func() commands.PromotionUoW

func (f FuncPromotionUoWFactory) Create() commands.PromotionUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}
