package queries

import (
	"math"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListingCriteria is the complete description of one listing request. The
// same Filter is used for Count and Find so the total always describes the
// rows being paged through.
type ListingCriteria struct {
	Filter ports.OrderFilter
	Sort   ports.OrderSort
	Page   int64
	Limit  int64
	Skip   int64
}

// NewListingCriteria scopes non-admins to their own orders and computes the
// offset. page is clamped to at least 1; limit must already be positive.
func NewListingCriteria(caller identity.Caller, status *string, page, limit int64) ListingCriteria {
	filter := ports.OrderFilter{Status: status}
	if !caller.IsAdmin() {
		owner := caller.SubjectID()
		filter.OwnerID = &owner
	}

	page = max(page, 1)

	return ListingCriteria{
		Filter: filter,
		Sort:   ports.NewestFirst,
		Page:   page,
		Limit:  limit,
		Skip:   skipFor(page, limit),
	}
}

// skipFor returns (page-1)*limit, saturating instead of overflowing.
func skipFor(page, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}

// OrderPage is one page of a listing.
type OrderPage struct {
	Orders     []*order.Order
	Total      int64
	Page       int64
	Limit      int64
	TotalPages int64
}

// PageOf builds the page descriptor. TotalPages is ceil(total/limit), 0 for
// an empty result.
func PageOf(criteria ListingCriteria, total int64, orders []*order.Order) OrderPage {
	if orders == nil {
		orders = []*order.Order{}
	}

	var pages int64
	if criteria.Limit > 0 {
		pages = total / criteria.Limit
		if total%criteria.Limit != 0 {
			pages++
		}
	}

	return OrderPage{
		Orders:     orders,
		Total:      total,
		Page:       criteria.Page,
		Limit:      criteria.Limit,
		TotalPages: pages,
	}
}
