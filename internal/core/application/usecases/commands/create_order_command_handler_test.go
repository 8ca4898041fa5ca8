package commands_test

import (
	"errors"
	"testing"
	"time"

	"oms/internal/adapters/out/memory"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(mustCaller("alice", identity.Customer), "alice", widgetInputs(), nil)

	repo := memory.NewOrderRepository()
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, testutil.NewStepClock(start, time.Second))
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "1250", created.TotalPrice().String())
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "alice", created.OwnerID())
	assert.True(t, created.CreatedAt().Equal(start))
	assert.True(t, created.UpdatedAt().Equal(created.CreatedAt()))
	assert.Len(t, created.ID().String(), kernel.IDLength)
	assert.Equal(t, 1, repo.Len())
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AdminChoosesOwnerAndStatus(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(mustCaller("root", identity.Admin), "bob", widgetInputs(), ptr("Shipped"))

	repo := memory.NewOrderRepository()
	h := commands.NewCreateOrderCommandHandler(orderUoWFactory(repo), kernel.SystemClock{})
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "bob", created.OwnerID())
	assert.Equal(t, order.Shipped, created.Status())
}

func TestCreateOrderCommandHandler_Handle_Forbidden(t *testing.T) {
	ctx := t.Context()
	customer := mustCaller("alice", identity.Customer)

	t.Run("should refuse orders for another user", func(t *testing.T) {
		cmd, _ := commands.NewCreateOrderCommand(customer, "bob", widgetInputs(), nil)
		factory := new(MockOrderUoWFactory)

		h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessIsForbidden)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should refuse non pending self created orders", func(t *testing.T) {
		cmd, _ := commands.NewCreateOrderCommand(customer, "alice", widgetInputs(), ptr("Delivered"))
		factory := new(MockOrderUoWFactory)

		h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessIsForbidden)
		assert.Contains(t, err.Error(), "only pending orders may be self-created")
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should accept explicit pending", func(t *testing.T) {
		cmd, _ := commands.NewCreateOrderCommand(customer, "alice", widgetInputs(), ptr("Pending"))

		h := commands.NewCreateOrderCommandHandler(orderUoWFactory(memory.NewOrderRepository()), kernel.SystemClock{})
		_, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
	})
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(mustCaller("alice", identity.Customer), "alice", widgetInputs(), nil)

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_InsertError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(mustCaller("alice", identity.Customer), "alice", widgetInputs(), nil)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	unavailable := errs.NewStoreIsUnavailableError("insert order", errors.New("connection refused"))
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Insert", mock.Anything, mock.AnythingOfType("*order.Order")).Return(kernel.ID{}, unavailable).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStoreIsUnavailable)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(mustCaller("alice", identity.Customer), "alice", widgetInputs(), nil)

	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(memory.NewOrderRepository()).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, kernel.SystemClock{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

type memoryFactory struct{ inner *memory.UnitOfWorkFactory }

func (f memoryFactory) Create() commands.OrderUoW { return f.inner.Create() }

// orderUoWFactory adapts the in-memory store to commands.OrderUoWFactory.
func orderUoWFactory(repo *memory.OrderRepository) commands.OrderUoWFactory {
	return memoryFactory{inner: memory.NewUnitOfWorkFactory(repo)}
}
