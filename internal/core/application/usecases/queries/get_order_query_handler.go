package queries

import (
	"context"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/core/ports"
)

// GetOrderQueryHandler reads single orders. A customer may only read orders
// it owns; an admin may read any.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(repo)
//	o, err := handler.Handle(ctx, query)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	case errors.Is(err, errs.ErrAccessIsForbidden):
//	    // someone else's order
//	}
type GetOrderQueryHandler struct {
	repo   ports.OrderRepository
	access services.OrderAccessPolicy
}

// NewGetOrderQueryHandler creates a handler reading through repo.
func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

// Handle looks the order up, then checks ownership. Missing orders are
// reported before ownership, so NotFound does not depend on the caller.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.repo.FindByID(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.access.AuthorizeRead(query.Caller(), o); err != nil {
		return nil, err
	}

	return o, nil
}
