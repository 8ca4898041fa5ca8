// Package queries contains read-only operations over orders: point lookup
// and the scoped, paginated listing.
package queries

import (
	"errors"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by id.
//
// Example:
//
//	query, err := NewGetOrderQuery(caller, "0190f1c2a4b87c3d9e0f112233445566")
//	if err != nil {
//	    return err // malformed id, the store is not reached
//	}
//
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	caller  identity.Caller
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates the caller and the id.
func NewGetOrderQuery(caller identity.Caller, orderID string) (GetOrderQuery, error) {
	if err := caller.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		caller:  caller,
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Caller() identity.Caller {
	return q.caller
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}
