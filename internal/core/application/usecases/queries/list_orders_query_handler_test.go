package queries_test

import (
	"math"
	"testing"

	"oms/internal/adapters/out/memory"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	customer := mustCaller(t, "alice", identity.Customer)

	t.Run("should apply defaults", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(customer, nil, nil, nil)

		require.NoError(t, err)
		c := q.Criteria()
		assert.Equal(t, int64(1), c.Page)
		assert.Equal(t, int64(10), c.Limit)
		assert.Zero(t, c.Skip)
	})

	t.Run("should clamp page below one", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(customer, nil, ptr(int64(-3)), nil)

		require.NoError(t, err)
		assert.Equal(t, int64(1), q.Criteria().Page)
	})

	t.Run("should reject non positive limit", func(t *testing.T) {
		for _, limit := range []int64{0, -1} {
			_, err := queries.NewListOrdersQuery(customer, nil, nil, ptr(limit))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, "limit", errs.ParamName(err))
		}
	})
}

func TestNewListingCriteria(t *testing.T) {
	t.Run("should scope customers to themselves", func(t *testing.T) {
		c := queries.NewListingCriteria(mustCaller(t, "alice", identity.Customer), ptr("Pending"), 3, 20)

		require.NotNil(t, c.Filter.OwnerID)
		assert.Equal(t, "alice", *c.Filter.OwnerID)
		assert.Equal(t, "Pending", *c.Filter.Status)
		assert.Equal(t, int64(40), c.Skip)
	})

	t.Run("should not scope admins", func(t *testing.T) {
		c := queries.NewListingCriteria(mustCaller(t, "root", identity.Admin), nil, 1, 10)

		assert.Nil(t, c.Filter.OwnerID)
		assert.Nil(t, c.Filter.Status)
	})

	t.Run("should saturate skip for huge pages", func(t *testing.T) {
		c := queries.NewListingCriteria(mustCaller(t, "root", identity.Admin), nil, math.MaxInt64, 100)

		assert.Equal(t, int64(math.MaxInt64), c.Skip)
	})
}

func TestPageOf(t *testing.T) {
	criteria := queries.ListingCriteria{Page: 2, Limit: 10}

	assert.Equal(t, int64(3), queries.PageOf(criteria, 25, nil).TotalPages)
	assert.Equal(t, int64(2), queries.PageOf(criteria, 20, nil).TotalPages)
	assert.Zero(t, queries.PageOf(criteria, 0, nil).TotalPages)
	assert.NotNil(t, queries.PageOf(criteria, 0, nil).Orders)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	repo := memory.NewOrderRepository()
	alices := seed(t, repo, "alice", order.Pending, base, 7)
	seed(t, repo, "bob", order.Shipped, base, 3)
	h := queries.NewListOrdersQueryHandler(repo)
	ctx := t.Context()

	t.Run("should page through own orders newest first", func(t *testing.T) {
		customer := mustCaller(t, "alice", identity.Customer)
		var seen []kernel.ID

		for page := int64(1); page <= 3; page++ {
			q, err := queries.NewListOrdersQuery(customer, nil, ptr(page), ptr(int64(3)))
			require.NoError(t, err)

			result, err := h.Handle(ctx, q)
			require.NoError(t, err)

			assert.Equal(t, int64(7), result.Total)
			assert.Equal(t, int64(3), result.TotalPages)
			assert.Equal(t, page, result.Page)
			for _, o := range result.Orders {
				assert.Equal(t, "alice", o.OwnerID())
				seen = append(seen, o.ID())
			}
		}

		require.Len(t, seen, 7)
		for i, id := range seen {
			assert.True(t, id.IsEqual(alices[6-i].ID()), "position %d", i)
		}
	})

	t.Run("should let admin see everything and filter by status", func(t *testing.T) {
		admin := mustCaller(t, "root", identity.Admin)

		q, err := queries.NewListOrdersQuery(admin, nil, nil, ptr(int64(100)))
		require.NoError(t, err)
		all, err := h.Handle(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(10), all.Total)
		assert.Len(t, all.Orders, 10)

		q, err = queries.NewListOrdersQuery(admin, ptr("Shipped"), nil, nil)
		require.NoError(t, err)
		shipped, err := h.Handle(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(3), shipped.Total)
		assert.Equal(t, int64(1), shipped.TotalPages)
	})

	t.Run("should return empty page for unknown status", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(mustCaller(t, "root", identity.Admin), ptr("Lost"), nil, nil)
		require.NoError(t, err)

		result, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Zero(t, result.Total)
		assert.Empty(t, result.Orders)
	})

	t.Run("should return empty page past the end", func(t *testing.T) {
		q, err := queries.NewListOrdersQuery(mustCaller(t, "alice", identity.Customer), nil, ptr(int64(50)), nil)
		require.NoError(t, err)

		result, err := h.Handle(ctx, q)

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.Total)
		assert.Empty(t, result.Orders)
	})
}
