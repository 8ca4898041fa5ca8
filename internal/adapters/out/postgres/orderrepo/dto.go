// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row; its items live in a jsonb column so that the
// row is the whole document and every repository call is a single statement.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by owner and status for the listing, and by created_at for its sort.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     string          `gorm:"type:text;not null;index"`
	Items      ItemsDTO        `gorm:"type:jsonb;not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric;not null"`
	Status     string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time       `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	UpdatedAt  time.Time       `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items document. Prices are kept as strings
// in JSON so no precision is lost to float64.
type ItemDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// ItemsDTO is the jsonb items column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer.
func (i ItemsDTO) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (i *ItemsDTO) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*i = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ItemsDTO", src)
	}
	return json.Unmarshal(raw, i)
}

func itemsFromDomain(items []order.Item) ItemsDTO {
	dtos := make(ItemsDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
	}
	return dtos
}

func (i ItemsDTO) toDomain() ([]order.Item, error) {
	items := make([]order.Item, 0, len(i))
	var all []error
	for _, dto := range i {
		item, err := order.NewItem(dto.ProductID, dto.Name, dto.Price, dto.Quantity)
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

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().UUID(),
		UserID:     o.OwnerID(),
		Items:      itemsFromDomain(o.Items()),
		TotalPrice: o.TotalPrice(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, so a corrupted row surfaces as an error instead of an
// inconsistent order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	items, err := dto.Items.toDomain()
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.UserID, items, dto.TotalPrice, status, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

// columnsFromFields maps the present OrderFields to column assignments.
func columnsFromFields(fields ports.OrderFields) map[string]any {
	columns := make(map[string]any, 4)
	if fields.Status != nil {
		columns["status"] = fields.Status.String()
	}
	if fields.HasItems {
		columns["items"] = itemsFromDomain(fields.Items)
	}
	if fields.TotalPrice != nil {
		columns["total_price"] = *fields.TotalPrice
	}
	if fields.UpdatedAt != nil {
		columns["updated_at"] = fields.UpdatedAt.UTC()
	}
	return columns
}
