package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUpdateMenuItemCommand(t *testing.T, itemID, restaurantID kernel.UUID) commands.UpdateMenuItemCommand {
	t.Helper()
	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, restaurantID,
		"Margherita", "tomato and mozzarella", mustMoney(t, 1400),
		"", "pizza", true, false, 8, false,
	)
	require.NoError(t, err)
	return cmd
}

func TestUpdateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	item := testMenuItem(t, restaurantID, 5)
	cmd := testUpdateMenuItemCommand(t, item.ID(), restaurantID)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, item.ID()).Return(item, nil).Once(),
		repo.On("Update", mock.Anything, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, int64(1400), item.Price().Amount())
	require.Equal(t, 8, item.Stock())
	require.False(t, item.IsAvailable())
	repo.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()
	item := testMenuItem(t, kernel.NewUUID(), 5)
	cmd := testUpdateMenuItemCommand(t, item.ID(), kernel.NewUUID())

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateMenuItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	cmd := testUpdateMenuItemCommand(t, itemID, kernel.NewUUID())

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, itemID).
			Return(nil, errs.NewObjectNotFoundError("menu item", itemID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
