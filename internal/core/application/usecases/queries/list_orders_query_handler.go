package queries

import (
	"context"

	"oms/internal/core/ports"
)

// ListOrdersQueryHandler pages through orders.
type ListOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewListOrdersQueryHandler(repo ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{repo: repo}
}

// Handle counts and fetches with one criteria value. Count and Find are two
// statements, so a concurrent write may make the page disagree with the
// total by a few rows.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	criteria := query.Criteria()

	total, err := h.repo.Count(ctx, criteria.Filter)
	if err != nil {
		return OrderPage{}, err
	}

	orders, err := h.repo.Find(ctx, criteria.Filter, criteria.Sort, criteria.Skip, criteria.Limit)
	if err != nil {
		return OrderPage{}, err
	}

	return PageOf(criteria, total, orders), nil
}
