package kernel_test

import (
	"strings"
	"testing"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should create a valid fixed-length lowercase hex id", func(t *testing.T) {
		id := kernel.NewID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), kernel.IDLength)
		assert.Equal(t, strings.ToLower(id.String()), id.String())
		assert.Equal(t, uuid.Version(7), id.UUID().Version())
	})

	t.Run("should create unique ids in creation order", func(t *testing.T) {
		previous := kernel.NewID()
		for range 100 {
			next := kernel.NewID()
			assert.False(t, next.IsEqual(previous))
			assert.Equal(t, 1, next.Compare(previous), "%s should sort after %s", next, previous)
			previous = next
		}
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("should round trip the string form", func(t *testing.T) {
		id := kernel.NewID()

		parsed, err := kernel.IDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(id))
	})

	t.Run("should accept upper case digits", func(t *testing.T) {
		id := kernel.NewID()

		parsed, err := kernel.IDFromString(strings.ToUpper(id.String()))

		require.NoError(t, err)
		assert.Equal(t, id.String(), parsed.String())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		testCases := []string{
			"",
			"not-a-valid-objectid",
			"550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a71644665544000",
			"550e8400e29b41d4a7164466554400000",
			"zze8400e29b41d4a716446655440000z",
			"507f1f77bcf86cd799439011",
		}

		for _, input := range testCases {
			t.Run(input, func(t *testing.T) {
				_, err := kernel.IDFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should reject the all zero id", func(t *testing.T) {
		_, err := kernel.IDFromString(strings.Repeat("0", kernel.IDLength))

		require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
	})
}

func TestIDFromUUID(t *testing.T) {
	u := uuid.New()

	id, err := kernel.IDFromUUID(u)

	require.NoError(t, err)
	assert.Equal(t, u, id.UUID())
	assert.Equal(t, strings.ReplaceAll(u.String(), "-", ""), id.String())

	_, err = kernel.IDFromUUID(uuid.Nil)
	require.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	require.ErrorIs(t, id.Validate(), kernel.ErrIDIsNotConstructed)
}
