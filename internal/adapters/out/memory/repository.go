// Package memory provides a process-local OrderRepository and a matching
// unit of work. It keeps the same document semantics as the PostgreSQL
// adapter: orders are stored as snapshots and rebuilt with RestoreOrder on
// every read, so callers never share state with the store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type document struct {
	id         kernel.ID
	ownerID    string
	items      []order.Item
	totalPrice decimal.Decimal
	status     order.Status
	createdAt  time.Time
	updatedAt  time.Time
}

func fromDomain(o *order.Order) document {
	return document{
		id:         o.ID(),
		ownerID:    o.OwnerID(),
		items:      o.Items(),
		totalPrice: o.TotalPrice(),
		status:     o.Status(),
		createdAt:  o.CreatedAt(),
		updatedAt:  o.UpdatedAt(),
	}
}

func (d document) toDomain() (*order.Order, error) {
	return order.RestoreOrder(d.id, d.ownerID, d.items, d.totalPrice, d.status, d.createdAt, d.updatedAt)
}

func (d document) matches(filter ports.OrderFilter) bool {
	if filter.OwnerID != nil && d.ownerID != *filter.OwnerID {
		return false
	}
	if filter.Status != nil && d.status.String() != *filter.Status {
		return false
	}
	return true
}

// OrderRepository is a map-backed ports.OrderRepository safe for concurrent use.
type OrderRepository struct {
	mu   sync.RWMutex
	docs map[kernel.ID]document
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{docs: make(map[kernel.ID]document)}
}

func (r *OrderRepository) Insert(ctx context.Context, aggregate *order.Order) (kernel.ID, error) {
	if err := ctx.Err(); err != nil {
		return kernel.ID{}, err
	}
	if err := aggregate.Validate(); err != nil {
		return kernel.ID{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[aggregate.ID()]; ok {
		return kernel.ID{}, fmt.Errorf("order %s already exists", aggregate.ID())
	}
	r.docs[aggregate.ID()] = fromDomain(aggregate)
	return aggregate.ID(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	doc, ok := r.docs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("id", id.String())
	}
	return doc.toDomain()
}

func (r *OrderRepository) Find(
	ctx context.Context,
	filter ports.OrderFilter,
	_ ports.OrderSort,
	skip, limit int64,
) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := make([]document, 0, len(r.docs))
	for _, doc := range r.docs {
		if doc.matches(filter) {
			matched = append(matched, doc)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, func(a, b document) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return b.id.Compare(a.id)
	})

	total := int64(len(matched))
	start := min(max(skip, 0), total)
	end := total
	if limit > 0 && limit < total-start {
		end = start + limit
	}

	orders := make([]*order.Order, 0, end-start)
	for _, doc := range matched[start:end] {
		o, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, doc := range r.docs {
		if doc.matches(filter) {
			n++
		}
	}
	return n, nil
}

func (r *OrderRepository) UpdateFields(ctx context.Context, id kernel.ID, fields ports.OrderFields) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return false, nil
	}

	if fields.Status != nil {
		doc.status = *fields.Status
	}
	if fields.HasItems {
		doc.items = slices.Clone(fields.Items)
	}
	if fields.TotalPrice != nil {
		doc.totalPrice = *fields.TotalPrice
	}
	if fields.UpdatedAt != nil {
		doc.updatedAt = *fields.UpdatedAt
	}

	r.docs[id] = doc
	return true, nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id kernel.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return false, nil
	}
	delete(r.docs, id)
	return true, nil
}

// Len returns the number of stored orders.
func (r *OrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
