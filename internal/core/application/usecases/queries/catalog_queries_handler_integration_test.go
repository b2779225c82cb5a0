package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/driverrepo"
	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/adapters/out/postgres/promorepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/promotion"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CatalogQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *CatalogQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&promorepo.PromotionDTO{},
		&driverrepo.DriverDTO{},
		&restaurantrepo.RestaurantDTO{},
	))
}

func (suite *CatalogQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogQueriesTestSuite) SetupTest() {
	for _, table := range []string{"menu_items", "promotions", "drivers", "restaurants"} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *CatalogQueriesTestSuite) money(amount int64) kernel.Money {
	m, err := kernel.NewMoney(amount)
	suite.Require().NoError(err)
	return m
}

func (suite *CatalogQueriesTestSuite) seedRestaurant(userID kernel.UUID) *restaurant.Restaurant {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), userID, "Thai Corner", "5 High St", "")
	suite.Require().NoError(err)

	repo := restaurantrepo.NewGormRestaurantRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), r))
	return r
}

func (suite *CatalogQueriesTestSuite) seedMenuItem(restaurantID kernel.UUID, name string, stock int) *menu.MenuItem {
	item, err := menu.NewMenuItem(
		kernel.NewUUID(), restaurantID, name, "", suite.money(1500), "", "mains", false, false, stock,
	)
	suite.Require().NoError(err)

	repo := menurepo.NewGormMenuItemRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), item))
	return item
}

func (suite *CatalogQueriesTestSuite) seedPromotion(
	restaurantID kernel.UUID, code string, active bool, until time.Time,
) *promotion.Promotion {
	promo, err := promotion.NewPromotion(
		kernel.NewUUID(), restaurantID, code, "ten percent off",
		promotion.Percent, 10, suite.money(1000), active,
		time.Now().Add(-time.Hour), until,
	)
	suite.Require().NoError(err)

	repo := promorepo.NewGormPromotionRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), promo))
	return promo
}

func (suite *CatalogQueriesTestSuite) TestGetRestaurants_OpenOnly() {
	open := suite.seedRestaurant(kernel.NewUUID())

	closed := suite.seedRestaurant(kernel.NewUUID())
	closed.ToggleOpen()
	repo := restaurantrepo.NewGormRestaurantRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Update(context.Background(), closed))

	handler := queries.NewGetRestaurantsQueryHandler(suite.db)

	all, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery(false))
	suite.Require().NoError(err)
	suite.Len(all, 2)

	openOnly, err := handler.Handle(context.Background(), queries.NewGetRestaurantsQuery(true))
	suite.Require().NoError(err)
	suite.Require().Len(openOnly, 1)
	suite.True(openOnly[0].ID.IsEqual(open.ID()))
}

func (suite *CatalogQueriesTestSuite) TestGetMenu_AvailableOnly() {
	restaurantID := kernel.NewUUID()
	suite.seedMenuItem(restaurantID, "Pad Thai", 5)
	suite.seedMenuItem(restaurantID, "Green Curry", 0)

	query, err := queries.NewGetMenuQuery(restaurantID, true)
	suite.Require().NoError(err)

	handler := queries.NewGetMenuQueryHandler(suite.db)
	items, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(items, 1)
	suite.Equal("Pad Thai", items[0].Name)
	suite.Equal(5, items[0].Stock)
}

func (suite *CatalogQueriesTestSuite) TestGetActivePromotions_SkipsInactiveAndExpired() {
	restaurantID := kernel.NewUUID()
	current := suite.seedPromotion(restaurantID, "TENOFF", true, time.Now().Add(time.Hour))
	suite.seedPromotion(restaurantID, "DISABLED", false, time.Now().Add(time.Hour))
	suite.seedPromotion(restaurantID, "EXPIRED", true, time.Now().Add(-time.Minute))

	query, err := queries.NewGetActivePromotionsQuery(restaurantID)
	suite.Require().NoError(err)

	handler := queries.NewGetActivePromotionsQueryHandler(suite.db)
	promos, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(promos, 1)
	suite.Equal(current.Code(), promos[0].Code)
	suite.Equal("percent", promos[0].DiscountType)
}

func (suite *CatalogQueriesTestSuite) TestValidatePromo() {
	restaurantID := kernel.NewUUID()
	suite.seedPromotion(restaurantID, "TENOFF", true, time.Now().Add(time.Hour))

	handler := queries.NewValidatePromoQueryHandler(suite.db)

	suite.Run("qualifying total gets the discount", func() {
		query, err := queries.NewValidatePromoQuery("TENOFF", restaurantID, suite.money(2400))
		suite.Require().NoError(err)

		verdict, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.True(verdict.Valid)
		suite.Equal(int64(240), verdict.DiscountAmount)
	})

	suite.Run("below minimum order", func() {
		query, err := queries.NewValidatePromoQuery("TENOFF", restaurantID, suite.money(500))
		suite.Require().NoError(err)

		verdict, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.False(verdict.Valid)
		suite.Contains(verdict.Reason, "minimum order")
	})

	suite.Run("unknown code", func() {
		query, err := queries.NewValidatePromoQuery("NOPE", restaurantID, suite.money(2400))
		suite.Require().NoError(err)

		verdict, err := handler.Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.False(verdict.Valid)
		suite.Contains(verdict.Reason, "not found")
	})
}

func (suite *CatalogQueriesTestSuite) TestProfileResolution() {
	userID := kernel.NewUUID()
	seeded := suite.seedRestaurant(userID)

	driverUserID := kernel.NewUUID()
	d, err := driver.NewDriver(kernel.NewUUID(), driverUserID, "AB-123-CD")
	suite.Require().NoError(err)
	driverRepo := driverrepo.NewGormDriverRepository(suite.db, noopTracker{})
	suite.Require().NoError(driverRepo.Add(context.Background(), d))

	restaurantQuery, err := queries.NewGetRestaurantProfileQuery(userID)
	suite.Require().NoError(err)
	profile, err := queries.NewGetRestaurantProfileQueryHandler(suite.db).
		Handle(context.Background(), restaurantQuery)
	suite.Require().NoError(err)
	suite.True(profile.ID.IsEqual(seeded.ID()))
	suite.True(profile.IsOpen)

	driverQuery, err := queries.NewGetDriverProfileQuery(driverUserID)
	suite.Require().NoError(err)
	driverProfile, err := queries.NewGetDriverProfileQueryHandler(suite.db).
		Handle(context.Background(), driverQuery)
	suite.Require().NoError(err)
	suite.True(driverProfile.ID.IsEqual(d.ID()))
	suite.Equal("AB-123-CD", driverProfile.VehiclePlate)

	missingQuery, err := queries.NewGetDriverProfileQuery(kernel.NewUUID())
	suite.Require().NoError(err)
	_, err = queries.NewGetDriverProfileQueryHandler(suite.db).
		Handle(context.Background(), missingQuery)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCatalogQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}
