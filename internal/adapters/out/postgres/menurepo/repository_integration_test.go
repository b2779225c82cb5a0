package menurepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests that
// do not assert on aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type MenuItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *menurepo.GormMenuItemRepository
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&menurepo.MenuItemDTO{}))

	suite.repository = menurepo.NewGormMenuItemRepository(db, noopTracker{})
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items CASCADE").Error)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) newItem(stock int) *menu.MenuItem {
	price, err := kernel.NewMoney(1200)
	suite.Require().NoError(err)

	item, err := menu.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(),
		"Margherita", "tomato and mozzarella", price,
		"https://img.example/margherita.png", "pizza", true, false, stock,
	)
	suite.Require().NoError(err)
	return item
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	item := suite.newItem(5)

	suite.Require().NoError(suite.repository.Add(ctx, item))

	loaded, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(item.ID()))
	suite.Equal("Margherita", loaded.Name())
	suite.Equal(5, loaded.Stock())
	suite.True(loaded.IsAvailable())
	suite.True(loaded.Price().IsEqual(item.Price()))
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestUpdate_SoldOutPersists() {
	ctx := context.Background()
	item := suite.newItem(2)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(item.Reserve(2))
	suite.Require().NoError(suite.repository.Update(ctx, item))

	loaded, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(0, loaded.Stock())
	suite.False(loaded.IsAvailable())
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	item := suite.newItem(3)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))

	_, err := suite.repository.Get(ctx, item.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetByRestaurant() {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()

	price, err := kernel.NewMoney(900)
	suite.Require().NoError(err)

	for _, name := range []string{"Carbonara", "Tiramisu"} {
		item, itemErr := menu.NewMenuItem(
			kernel.NewUUID(), restaurantID, name, "", price, "", "classics", false, false, 4,
		)
		suite.Require().NoError(itemErr)
		suite.Require().NoError(suite.repository.Add(ctx, item))
	}

	other := suite.newItem(1)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	items, err := suite.repository.GetByRestaurant(ctx, restaurantID)
	suite.Require().NoError(err)
	suite.Len(items, 2)
}

// Two transactions reserve the last units of the same item concurrently.
// The row lock serializes them: exactly one succeeds, and the final stock
// reflects a single reservation.
func (suite *MenuItemRepositoryIntegrationTestSuite) TestGetForUpdate_ConcurrentReservations() {
	ctx := context.Background()
	item := suite.newItem(5)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	reserve := func(qty int) error {
		tx := suite.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return tx.Error
		}
		defer tx.Rollback()

		repo := menurepo.NewGormMenuItemRepository(tx, noopTracker{})
		locked, err := repo.GetForUpdate(ctx, item.ID())
		if err != nil {
			return err
		}

		if err = locked.Reserve(qty); err != nil {
			return err
		}

		if err = repo.Update(ctx, locked); err != nil {
			return err
		}

		return tx.Commit().Error
	}

	results := make(chan error, 2)
	for range 2 {
		go func() {
			results <- reserve(3)
		}()
	}

	var failures int
	for range 2 {
		if err := <-results; err != nil {
			failures++
			suite.Require().ErrorIs(err, menu.ErrInsufficientStock)
		}
	}
	suite.Equal(1, failures)

	loaded, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Stock())
	suite.True(loaded.IsAvailable())
}

func TestMenuItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MenuItemRepositoryIntegrationTestSuite))
}
