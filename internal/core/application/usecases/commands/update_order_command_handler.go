package commands

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
	"oms/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial updates to orders.
//
// Only the fields present in the patch are written, together with
// updated_at and, when items change, the recomputed total_price. Concurrent
// updates are last-write-wins.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	policy     order.TransitionPolicy
}

// NewUpdateOrderCommandHandler creates a handler for order updates. policy
// decides which status changes are legal.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	policy order.TransitionPolicy,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     policy,
	}
}

// Handle loads the order, applies the patch, writes the changed fields and
// returns a fresh read.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if err = aggregate.ApplyPatch(patch, h.policy, h.clock.Now()); err != nil {
		return nil, err
	}

	matched, err := orderRepo.UpdateFields(ctx, aggregate.ID(), changedFields(aggregate, patch))
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, errs.NewObjectNotFoundError("id", aggregate.ID().String())
	}

	updated, err := orderRepo.FindByID(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}

// changedFields selects the columns the patch touched on the patched order.
func changedFields(aggregate *order.Order, patch order.Patch) ports.OrderFields {
	all := ports.FieldsFromOrder(aggregate)
	fields := ports.OrderFields{UpdatedAt: all.UpdatedAt}

	if _, ok := patch.Status(); ok {
		fields.Status = all.Status
	}
	if _, ok := patch.Items(); ok {
		fields.Items = all.Items
		fields.HasItems = true
		fields.TotalPrice = all.TotalPrice
	}

	return fields
}
