package order_test

import (
	"testing"

	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("p1", "Widget", decimal.RequireFromString("9.99"), 3)

		require.NoError(t, err)
		assert.Equal(t, "p1", item.ProductID())
		assert.Equal(t, "Widget", item.Name())
		assert.True(t, decimal.RequireFromString("29.97").Equal(item.Subtotal()))
	})

	t.Run("should reject zero price and negative quantity together", func(t *testing.T) {
		_, err := order.NewItem("p1", "Widget", decimal.Zero, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should require name and product id", func(t *testing.T) {
		_, err := order.NewItem(" ", "", decimal.NewFromInt(1), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "product_id")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestNewItem_PriceBounds(t *testing.T) {
	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"largest integer part", "999999999999999", true},
		{"trailing zeros beyond the scale", "12.5000000000000", true},
		{"smallest fraction", "0.00000001", true},
		{"exponent notation within bounds", "1.5e3", true},
		{"too many integer digits", "1000000000000000", false},
		{"too many decimal places", "0.000000001", false},
		{"huge positive exponent", "1e50000000", false},
		{"huge negative exponent", "1e-50000000", false},
		{"negative huge exponent", "-1e50000000", false},
		{"zero with huge exponent", "0e50000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewItem("p1", "Widget", decimal.RequireFromString(tt.price), 1)

			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, "price", errs.ParamName(err))
			assert.Less(t, len(err.Error()), 200)
		})
	}
}

func TestNewItems(t *testing.T) {
	t.Run("should reject empty list", func(t *testing.T) {
		_, err := order.NewItems(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, "items", errs.ParamName(err))
	})

	t.Run("should name the offending position", func(t *testing.T) {
		_, err := order.NewItems([]order.ItemInput{
			{ProductID: "p1", Name: "A", Price: decimal.NewFromInt(1), Quantity: 1},
			{ProductID: "p2", Name: "B", Price: decimal.NewFromInt(-5), Quantity: 1},
		})

		require.Error(t, err)
		assert.Equal(t, "items[1].price", errs.ParamName(err))
	})
}

func TestTotal(t *testing.T) {
	t.Run("should sum exact decimal subtotals", func(t *testing.T) {
		items, err := order.NewItems([]order.ItemInput{
			{ProductID: "p1", Name: "A", Price: decimal.RequireFromString("0.1"), Quantity: 3},
			{ProductID: "p2", Name: "B", Price: decimal.RequireFromString("0.2"), Quantity: 1},
		})
		require.NoError(t, err)

		assert.Equal(t, "0.5", order.Total(items).String())
	})

	t.Run("should be zero for no items", func(t *testing.T) {
		assert.True(t, order.Total(nil).IsZero())
	})
}
