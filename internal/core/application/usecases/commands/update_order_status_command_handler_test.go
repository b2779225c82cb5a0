package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredOrder(t *testing.T, restaurantID kernel.UUID, driverID *kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, 1500), "")
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), restaurantID, driverID,
		"12 Main St", []order.Line{line},
		status, mustMoney(t, 1500), mustMoney(t, 0), nil, order.Unpaid,
	)
	require.NoError(t, err)
	return aggregate
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := restoredOrder(t, restaurantID, nil, order.Pending)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), restaurantID, order.Cooking)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.OrderTopic(aggregate.ID().String()), mock.Anything).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, false)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Cooking, aggregate.Status())
	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestUpdateOrderStatusCommandHandler_Handle_ReadyBroadcastsPickup(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := restoredOrder(t, restaurantID, nil, order.Cooking)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), restaurantID, order.Ready)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.OrderTopic(aggregate.ID().String()),
		mock.AnythingOfType("commands.OrderStatusEvent")).Once()
	// The pickup broadcast must be self-contained: drivers get the lines,
	// totals and address without a follow-up fetch.
	publisher.On("Publish", mock.Anything, ports.TopicOrderReadyForPickup,
		mock.MatchedBy(func(p any) bool {
			ev, ok := p.(commands.OrderEvent)
			return ok && ev.OrderID == aggregate.ID().String() &&
				ev.Status == order.Ready.String() &&
				ev.DeliveryAddress == aggregate.DeliveryAddress() &&
				len(ev.Lines) == len(aggregate.Lines())
		})).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, false)
	require.NoError(t, h.Handle(ctx, cmd))
	publisher.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestUpdateOrderStatusCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, kernel.NewUUID(), nil, order.Pending)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), kernel.NewUUID(), order.Cooking)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, false)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	aggregate := restoredOrder(t, restaurantID, nil, order.Delivered)
	cmd, err := commands.NewUpdateOrderStatusCommand(aggregate.ID(), restaurantID, order.Cooking)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewUpdateOrderStatusCommandHandler(factory, publisher, false)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
