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

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	aggregate := restoredOrder(t, kernel.NewUUID(), &driverID, order.OnTheWay)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), driverID)
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

	h := commands.NewCompleteOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.Delivered, aggregate.Status())
	publisher.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_ForeignDriver(t *testing.T) {
	ctx := t.Context()
	owningDriver := kernel.NewUUID()
	aggregate := restoredOrder(t, kernel.NewUUID(), &owningDriver, order.OnTheWay)
	cmd, err := commands.NewCompleteOrderCommand(aggregate.ID(), kernel.NewUUID())
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

	h := commands.NewCompleteOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	require.Equal(t, order.OnTheWay, aggregate.Status())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}
