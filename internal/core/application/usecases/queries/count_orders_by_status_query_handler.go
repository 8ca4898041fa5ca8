package queries

import (
	"context"
	"fmt"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
)

// StatusCounts is the number of stored orders per status. Every enumerated
// status is present, with 0 when no order has it.
type StatusCounts map[order.Status]int64

// CountOrdersByStatusQueryHandler computes StatusCounts over all orders,
// regardless of owner. It is an operator query with no caller; it backs the
// order status gauges.
type CountOrdersByStatusQueryHandler struct {
	repo ports.OrderRepository
}

func NewCountOrdersByStatusQueryHandler(repo ports.OrderRepository) CountOrdersByStatusQueryHandler {
	return CountOrdersByStatusQueryHandler{repo: repo}
}

// Handle issues one Count per status.
func (h CountOrdersByStatusQueryHandler) Handle(ctx context.Context) (StatusCounts, error) {
	statuses := order.Statuses()
	counts := make(StatusCounts, len(statuses))

	for _, status := range statuses {
		name := status.String()
		n, err := h.repo.Count(ctx, ports.OrderFilter{Status: &name})
		if err != nil {
			return nil, fmt.Errorf("count %s orders: %w", name, err)
		}
		counts[status] = n
	}

	return counts, nil
}
