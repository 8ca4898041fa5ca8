package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - id is valid and never changes
//   - ownerID is not blank and never changes
//   - items is never empty and every item is valid
//   - totalPrice equals the sum of price * quantity over items
//   - status is one of the enumerated statuses
//   - createdAt <= updatedAt, both UTC with microsecond precision
//
// All fields are private; the only mutation is ApplyPatch.
type Order struct {
	id         kernel.ID
	ownerID    string
	items      []Item
	totalPrice decimal.Decimal
	status     Status
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewOrder creates an order at time now. created_at and updated_at are both
// set to now, normalized to UTC with microsecond precision, and total_price
// is derived from items.
//
// Parameters:
//   - id: identifier assigned by the caller, usually kernel.NewID()
//   - ownerID: the user the order belongs to
//   - items: validated line items, at least one
//   - status: the initial status
//   - now: the creation instant
//
// Example:
//
//	items, _ := order.NewItems(inputs)
//	o, err := order.NewOrder(kernel.NewID(), "user-1", items, order.Pending, clock.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.ID, ownerID string, items []Item, status Status, now time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.createdAt = normalizeTime(now)
	o.updatedAt = o.createdAt
	return o, nil
}

// RestoreOrder rebuilds an order read back from storage. It checks the same
// invariants as NewOrder and additionally that the stored total matches the
// stored items and that createdAt does not follow updatedAt.
func RestoreOrder(
	id kernel.ID,
	ownerID string,
	items []Item,
	totalPrice decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setItems(items),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	if !o.totalPrice.Equal(totalPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total_price",
			fmt.Errorf("stored %s does not match items total %s", totalPrice, o.totalPrice),
		)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// OwnerID returns the user the order belongs to.
func (o *Order) OwnerID() string {
	return o.ownerID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ApplyPatch applies the present fields of patch at time now.
//
// This method enforces the following business rules:
//   - a present status must be allowed by policy from the current status
//   - present items replace the list and total_price is recomputed
//   - updated_at becomes now, but never earlier than created_at
//
// The order is left untouched when an error is returned.
//
// Example:
//
//	patch, _ := order.NewPatch(order.WithStatus(order.Shipped))
//	if err := o.ApplyPatch(patch, order.PermissiveTransitions{}, clock.Now()); err != nil {
//	    // transition rejected
//	}
func (o *Order) ApplyPatch(patch Patch, policy TransitionPolicy, now time.Time) error {
	status := o.status
	if s, ok := patch.Status(); ok {
		if err := policy.Allow(o.status, s); err != nil {
			return err
		}
		status = s
	}

	next := *o
	if items, ok := patch.Items(); ok {
		if err := next.setItems(items); err != nil {
			return err
		}
	}

	next.status = status
	next.touch(now)
	*o = next
	return nil
}

func (o *Order) touch(now time.Time) {
	t := normalizeTime(now)
	if t.Before(o.createdAt) {
		t = o.createdAt
	}
	o.updatedAt = t
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return errs.NewValueIsRequiredError("user_id")
	}
	o.ownerID = ownerID
	return nil
}

// setItems also derives totalPrice.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))
	}
	for i, item := range items {
		if !item.price.IsPositive() || item.quantity <= 0 || item.productID == "" || item.name == "" {
			return errs.NewValueIsInvalidError(fmt.Sprintf("items[%d]", i))
		}
	}
	o.items = slices.Clone(items)
	o.totalPrice = Total(o.items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updated_at")
	}
	createdAt, updatedAt = normalizeTime(createdAt), normalizeTime(updatedAt)
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"updated_at",
			fmt.Errorf("%s is before created_at %s", updatedAt.Format(time.RFC3339Nano), createdAt.Format(time.RFC3339Nano)),
		)
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}

// normalizeTime keeps timestamps comparable after a round trip through
// storage, which holds microseconds.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
