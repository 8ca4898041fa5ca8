package commands_test

import (
	"testing"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	customer := mustCaller("alice", identity.Customer)

	t.Run("should build command without status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(customer, "alice", widgetInputs(), nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "alice", cmd.OwnerID())
		assert.Len(t, cmd.Items(), 2)
		_, hasStatus := cmd.Status()
		assert.False(t, hasStatus)
	})

	t.Run("should parse requested status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(customer, "alice", widgetInputs(), ptr("Shipped"))

		require.NoError(t, err)
		s, ok := cmd.Status()
		assert.True(t, ok)
		assert.Equal(t, order.Shipped, s)
	})

	t.Run("should report every structural error", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(customer, "", nil, ptr("Lost"))

		require.True(t, errs.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "user_id")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject zero price", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(customer, "alice", []order.ItemInput{
			{ProductID: "p1", Name: "Free", Price: decimal.Zero, Quantity: 1},
		}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "items[0].price", errs.ParamName(err))
	})

	t.Run("should reject caller not built by constructor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(identity.Caller{}, "alice", widgetInputs(), nil)

		require.ErrorIs(t, err, identity.ErrCallerIsNotConstructed)
	})

	t.Run("should fail validation for zero command", func(t *testing.T) {
		require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
