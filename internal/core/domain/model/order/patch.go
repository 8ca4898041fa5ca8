package order

import (
	"errors"
	"slices"

	"oms/internal/pkg/errs"
)

// Patch is a partial update of an order. A field is either present with a
// value or absent; absent fields keep their current value. An empty Patch is
// valid and only refreshes updated_at.
type Patch struct {
	status    Status
	hasStatus bool
	items     []Item
	hasItems  bool
}

// PatchOption sets one field of a Patch.
type PatchOption func(*Patch) error

// WithStatus marks the status as present.
func WithStatus(status Status) PatchOption {
	return func(p *Patch) error {
		if err := status.Validate(); err != nil {
			return err
		}
		p.status = status
		p.hasStatus = true
		return nil
	}
}

// WithItems marks the items as present. Present items replace the whole list
// and must not be empty.
func WithItems(items []Item) PatchOption {
	return func(p *Patch) error {
		if len(items) == 0 {
			return errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))
		}
		p.items = slices.Clone(items)
		p.hasItems = true
		return nil
	}
}

// NewPatch builds a Patch from options, reporting every invalid field.
//
// Example:
//
//	patch, err := order.NewPatch(order.WithStatus(order.Shipped))
func NewPatch(opts ...PatchOption) (Patch, error) {
	p := Patch{}
	var all []error
	for _, opt := range opts {
		all = append(all, opt(&p))
	}
	if err := errors.Join(all...); err != nil {
		return Patch{}, err
	}
	return p, nil
}

func (p Patch) Status() (Status, bool) {
	return p.status, p.hasStatus
}

func (p Patch) Items() ([]Item, bool) {
	return slices.Clone(p.items), p.hasItems
}

// IsEmpty reports whether no field is present.
func (p Patch) IsEmpty() bool {
	return !p.hasStatus && !p.hasItems
}
