package guard_test

import (
	"errors"
	"testing"

	"oms/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a value object
// that must only be built through its constructor.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		sku      string
		quantity int
		guard    guard.ConstructorGuard
	}

	errLineItemNotConstructed := errors.New("lineItem must be created via newLineItem")

	newLineItem := func(sku string, quantity int) (lineItem, error) {
		if quantity <= 0 {
			return lineItem{}, errors.New("quantity must be greater than 0")
		}
		return lineItem{sku: sku, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem("p001", 2)

		require.NoError(t, err)
		require.NoError(t, item.guard.Validate(errLineItemNotConstructed))
		assert.Equal(t, 2, item.quantity)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var item lineItem

		err := item.guard.Validate(errLineItemNotConstructed)

		require.ErrorIs(t, err, errLineItemNotConstructed)
	})

	t.Run("failed_construction_returns_zero_value", func(t *testing.T) {
		item, err := newLineItem("p001", 0)

		require.Error(t, err)
		require.Error(t, item.guard.Validate(nil))
	})
}
