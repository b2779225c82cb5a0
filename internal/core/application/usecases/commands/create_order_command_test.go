package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	line := commands.OrderLineInput{MenuItemID: kernel.NewUUID(), Quantity: 2, Price: mustMoney(t, 900)}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Main St", []commands.OrderLineInput{line}, "SAVE10",
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "12 Main St", cmd.DeliveryAddress())
	require.Equal(t, "SAVE10", cmd.PromoCode())
	require.Len(t, cmd.Lines(), 1)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	line := commands.OrderLineInput{MenuItemID: kernel.NewUUID(), Quantity: 1, Price: mustMoney(t, 900)}

	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", []commands.OrderLineInput{line}, "",
	)
	require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
}

func TestNewCreateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Main St", nil, "",
	)
	require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
