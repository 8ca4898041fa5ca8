package commands_test

import (
	"errors"
	"testing"
	"time"

	"oms/internal/adapters/out/memory"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/testutil"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Twice(t *testing.T) {
	repo := memory.NewOrderRepository()
	created := seedOrder(t, repo, testutil.NewStepClock(start, time.Second))
	cmd, err := commands.NewDeleteOrderCommand(mustCaller("root", identity.Admin), created.ID().String())
	require.NoError(t, err)

	h := commands.NewDeleteOrderCommandHandler(orderUoWFactory(repo))

	require.NoError(t, h.Handle(t.Context(), cmd))
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrObjectNotFound)

	_, err = repo.FindByID(t.Context(), created.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID()
	cmd, err := commands.NewDeleteOrderCommand(mustCaller("root", identity.Admin), id.String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("DeleteByID", ctx, id).Return(false, errors.New("boom")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "boom")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewDeleteOrderCommandHandler(new(MockOrderUoWFactory))

	err := h.Handle(t.Context(), commands.DeleteOrderCommand{})

	require.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
