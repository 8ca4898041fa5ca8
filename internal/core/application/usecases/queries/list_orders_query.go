package queries

import (
	"errors"
	"fmt"

	"oms/internal/core/domain/model/identity"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders visible to the caller, newest first.
//
// Example:
//
//	status := "Pending"
//	query, err := NewListOrdersQuery(caller, &status, nil, nil) // page 1, limit 10
type ListOrdersQuery struct {
	caller identity.Caller
	status *string
	page   int64
	limit  int64

	guard guard.ConstructorGuard
}

// NewListOrdersQuery applies the defaults for absent page and limit. A page
// below 1 is clamped; a limit of 0 or less is rejected. status is passed
// through unparsed: an unknown value produces an empty page.
func NewListOrdersQuery(caller identity.Caller, status *string, page, limit *int64) (ListOrdersQuery, error) {
	if err := caller.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{
		caller: caller,
		page:   DefaultPage,
		limit:  DefaultLimit,
		guard:  guard.NewConstructorGuard(),
	}

	if status != nil {
		s := *status
		q.status = &s
	}
	if page != nil {
		q.page = max(*page, 1)
	}
	if limit != nil {
		if *limit <= 0 {
			return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
				"limit",
				fmt.Errorf("%d is not greater than 0", *limit),
			)
		}
		q.limit = *limit
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Criteria returns the listing descriptor for this query.
func (q ListOrdersQuery) Criteria() ListingCriteria {
	return NewListingCriteria(q.caller, q.status, q.page, q.limit)
}
