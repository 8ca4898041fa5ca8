package order

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price bounds. A price is checked against them before anything formats or
// rescales it: a decimal such as 1e50000000 parses in constant time but
// expands to fifty million digits.
const (
	MaxPriceIntegerDigits = 15
	MaxPriceScale         = 8

	maxPriceCoefficientDigits = 64
)

// Item is a line item of an order. It is a value object: two items with the
// same fields are interchangeable, and an Item never changes after creation.
type Item struct {
	productID string
	name      string
	price     decimal.Decimal
	quantity  int
}

// ItemInput carries the raw fields of a line item as received from a caller.
type ItemInput struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// NewItem validates and creates a single line item.
//
// Rules:
//   - productID and name must not be blank
//   - price must be greater than 0, with at most MaxPriceIntegerDigits
//     integer digits and MaxPriceScale decimal places
//   - quantity must be greater than 0
//
// Every violated rule is reported, joined into one error.
func NewItem(productID, name string, price decimal.Decimal, quantity int) (Item, error) {
	return newItem("", ItemInput{ProductID: productID, Name: name, Price: price, Quantity: quantity})
}

// NewItems validates a whole item list. The list must not be empty and every
// error names its position, e.g. "items[2].quantity".
//
// Example:
//
//	items, err := order.NewItems([]order.ItemInput{
//	    {ProductID: "p1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 2},
//	})
func NewItems(inputs []ItemInput) ([]Item, error) {
	if len(inputs) == 0 {
		return nil, errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))
	}

	items := make([]Item, 0, len(inputs))
	var all []error
	for i, in := range inputs {
		item, err := newItem(fmt.Sprintf("items[%d].", i), in)
		if err != nil {
			all = append(all, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(all...); err != nil {
		return nil, err
	}

	return items, nil
}

func newItem(prefix string, in ItemInput) (Item, error) {
	item := Item{}
	if err := errors.Join(
		item.setProductID(prefix, in.ProductID),
		item.setName(prefix, in.Name),
		item.setPrice(prefix, in.Price),
		item.setQuantity(prefix, in.Quantity),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Price() decimal.Decimal {
	return i.price
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price * quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// IsEqual compares all fields. Prices are compared by value, so 10 and 10.00
// are equal.
func (i Item) IsEqual(other Item) bool {
	return i.productID == other.productID &&
		i.name == other.name &&
		i.price.Equal(other.price) &&
		i.quantity == other.quantity
}

// Total returns the sum of the subtotals of items.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (i *Item) setProductID(prefix, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError(prefix + "product_id")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(prefix, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(prefix + "name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(prefix string, price decimal.Decimal) error {
	if err := checkPriceMagnitude(price); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(prefix+"price", err)
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(prefix+"price", errors.New("price is not greater than 0"))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(prefix string, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(prefix+"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// checkPriceMagnitude works on the coefficient and exponent only, so its cost
// does not depend on the size of the exponent.
func checkPriceMagnitude(price decimal.Decimal) error {
	if price.NumDigits() > maxPriceCoefficientDigits {
		return fmt.Errorf("more than %d significant digits", maxPriceCoefficientDigits)
	}

	coef := price.Coefficient()
	coef.Abs(coef)
	exp := int64(price.Exponent())

	// 12.500 is 12500e-3; strip the trailing zeros to get 125e-1.
	ten := big.NewInt(10)
	quo, rem := new(big.Int), new(big.Int)
	for coef.Sign() != 0 {
		quo.QuoRem(coef, ten, rem)
		if rem.Sign() != 0 {
			break
		}
		coef.Set(quo)
		exp++
	}
	if coef.Sign() == 0 {
		return nil
	}

	if int64(len(coef.String()))+exp > MaxPriceIntegerDigits {
		return fmt.Errorf("more than %d integer digits", MaxPriceIntegerDigits)
	}
	if -exp > MaxPriceScale {
		return fmt.Errorf("more than %d decimal places", MaxPriceScale)
	}
	return nil
}
