package queries_test

import (
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

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("should reject malformed id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(mustCaller(t, "alice", identity.Customer), "xyz")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero query", func(t *testing.T) {
		require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	repo := memory.NewOrderRepository()
	alices := seed(t, repo, "alice", order.Pending, base, 1)[0]
	h := queries.NewGetOrderQueryHandler(repo)

	t.Run("should return own order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(mustCaller(t, "alice", identity.Customer), alices.ID().String())
		require.NoError(t, err)

		got, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.True(t, got.ID().IsEqual(alices.ID()))
		assert.True(t, got.CreatedAt().Equal(alices.CreatedAt()))
		assert.Equal(t, alices.Items(), got.Items())
	})

	t.Run("should forbid another customer", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(mustCaller(t, "bob", identity.Customer), alices.ID().String())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrAccessIsForbidden)
	})

	t.Run("should allow admin", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(mustCaller(t, "root", identity.Admin), alices.ID().String())
		require.NoError(t, err)

		got, err := h.Handle(t.Context(), q)

		require.NoError(t, err)
		assert.Equal(t, "alice", got.OwnerID())
	})

	t.Run("should report missing order to anyone", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(mustCaller(t, "bob", identity.Customer), kernel.NewID().String())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), q)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
