package commands

import (
	"context"

	"oms/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders.
//
// Deleting the same id twice succeeds once and then reports
// errs.ErrObjectNotFound; the end state is the same either way.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	matched, err := uow.OrderRepository().DeleteByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !matched {
		return errs.NewObjectNotFoundError("id", cmd.OrderID().String())
	}

	return uow.Commit(ctx)
}
