package ports

import (
	"context"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderFilter selects orders by equality. A nil field does not constrain.
//
// Status is the raw external name so that an unrecognized value simply
// matches nothing.
type OrderFilter struct {
	OwnerID *string
	Status  *string
}

// OrderSort is the listing order. Only one order is supported.
type OrderSort int

const (
	// NewestFirst sorts by created_at descending, then id descending.
	NewestFirst OrderSort = iota
)

// OrderFields is the set of columns an UpdateFields call writes. A nil
// pointer, or HasItems false, leaves the column untouched.
type OrderFields struct {
	Status     *order.Status
	Items      []order.Item
	HasItems   bool
	TotalPrice *decimal.Decimal
	UpdatedAt  *time.Time
}

// FieldsFromOrder captures every mutable column of o.
func FieldsFromOrder(o *order.Order) OrderFields {
	status := o.Status()
	total := o.TotalPrice()
	updatedAt := o.UpdatedAt()
	return OrderFields{
		Status:     &status,
		Items:      o.Items(),
		HasItems:   true,
		TotalPrice: &total,
		UpdatedAt:  &updatedAt,
	}
}

// OrderRepository defines the persistence contract for order aggregates.
// Every method is a single atomic statement; connection failures are
// reported as errs.StoreIsUnavailableError.
type OrderRepository interface {
	// Insert persists a new order and returns its id.
	Insert(ctx context.Context, aggregate *order.Order) (kernel.ID, error)

	// FindByID returns errs.ObjectNotFoundError when no order has the id.
	FindByID(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Find scans orders matching filter in sort order, skipping skip rows and
	// returning at most limit.
	Find(ctx context.Context, filter OrderFilter, sort OrderSort, skip, limit int64) ([]*order.Order, error)

	// Count returns the number of orders matching filter.
	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// UpdateFields writes the present fields and reports whether a row matched.
	UpdateFields(ctx context.Context, id kernel.ID, fields OrderFields) (bool, error)

	// DeleteByID reports whether a row was removed.
	DeleteByID(ctx context.Context, id kernel.ID) (bool, error)
}
