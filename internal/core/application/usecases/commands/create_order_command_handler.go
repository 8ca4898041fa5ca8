package commands

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
)

// CreateOrderCommandHandler places new orders.
//
// Authorization rules:
//   - a customer may only create orders for itself
//   - a customer may only create Pending orders
//   - an admin may create orders for anyone, in any status
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(created.ID())
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	access     services.OrderAccessPolicy
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle authorizes the command, persists the order with created_at and
// updated_at set to now, and returns the order as read back from the store.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	requested, hasStatus := cmd.Status()
	status, err := h.access.AuthorizeCreate(cmd.Caller(), cmd.OwnerID(), requested, hasStatus)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewID(), cmd.OwnerID(), cmd.Items(), status, h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.Insert(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	stored, err := orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
