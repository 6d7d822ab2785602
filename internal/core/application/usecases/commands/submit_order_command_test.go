package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	t.Run("constructs with valid inputs", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customer := testActor(t, actor.RoleCustomer)

		cmd, err := commands.NewSubmitOrderCommand(orderID, customer)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.True(t, cmd.By().IsEqual(customer))
	})

	t.Run("rejects invalid order id", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.UUID{}, testActor(t, actor.RoleCustomer))
		require.Error(t, err)
	})

	t.Run("rejects unconstructed actor", func(t *testing.T) {
		_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), actor.Actor{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.SubmitOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}
