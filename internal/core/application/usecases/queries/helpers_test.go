package queries_test

import (
	"testing"
	"time"

	"oms/internal/adapters/out/memory"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)

func mustCaller(t *testing.T, subject string, role identity.Role) identity.Caller {
	t.Helper()
	c, err := identity.NewCaller(subject, role)
	require.NoError(t, err)
	return c
}

// seed inserts n orders for owner, one minute apart starting at at.
func seed(t *testing.T, repo *memory.OrderRepository, owner string, status order.Status, at time.Time, n int) []*order.Order {
	t.Helper()
	items, err := order.NewItems([]order.ItemInput{
		{ProductID: "p1", Name: "Widget", Price: decimal.NewFromInt(3), Quantity: 1},
	})
	require.NoError(t, err)

	out := make([]*order.Order, 0, n)
	for i := range n {
		o, err := order.NewOrder(kernel.NewID(), owner, items, status, at.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
		_, err = repo.Insert(t.Context(), o)
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
