package orderrepo

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
	"oms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Insert saves a new order to the database.
func (r *GormOrderRepository) Insert(ctx context.Context, aggregate *order.Order) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.ID{}, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return kernel.ID{}, classify("insert order", err)
	}

	return aggregate.ID(), nil
}

// FindByID retrieves an order by ID.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id.String())
		}
		return nil, classify("find order", err)
	}

	return toDomain(dto)
}

// Find scans orders newest first. The id tie-break keeps pages stable when
// several orders share a created_at.
func (r *GormOrderRepository) Find(
	ctx context.Context,
	filter ports.OrderFilter,
	_ ports.OrderSort,
	skip, limit int64,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(applyFilter(filter)).
		Order("created_at DESC").
		Order("id DESC").
		Offset(int(skip)).
		Limit(int(limit)).
		Find(&dtos).Error
	if err != nil {
		return nil, classify("find orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Count returns the number of orders matching filter.
func (r *GormOrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Scopes(applyFilter(filter)).
		Count(&n).Error
	if err != nil {
		return 0, classify("count orders", err)
	}
	return n, nil
}

// UpdateFields issues one UPDATE with only the present columns.
func (r *GormOrderRepository) UpdateFields(ctx context.Context, id kernel.ID, fields ports.OrderFields) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	columns := columnsFromFields(fields)
	if len(columns) == 0 {
		return r.exists(ctx, id)
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.UUID()).
		Updates(columns)
	if result.Error != nil {
		return false, classify("update order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// DeleteByID removes the order and reports whether a row matched.
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.UUID())
	if result.Error != nil {
		return false, classify("delete order", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *GormOrderRepository) exists(ctx context.Context, id kernel.ID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.UUID()).Count(&n).Error
	if err != nil {
		return false, classify("find order", err)
	}
	return n > 0, nil
}

// applyFilter is shared by Count and Find so both see the same predicate.
func applyFilter(filter ports.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.OwnerID != nil {
			db = db.Where("user_id = ?", *filter.OwnerID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", *filter.Status)
		}
		return db
	}
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)
