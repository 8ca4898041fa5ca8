package services

import (
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
)

// OrderAccessPolicy is a domain service deciding what a caller may do with
// orders.
//
// Business rules:
//   - Admins may create orders for anyone, with any status
//   - Customers may only create orders for themselves, and only Pending ones
//   - Customers may only read orders they own; admins may read any
//   - Only admins may modify or delete orders
//
// Every refusal is an errs.AccessIsForbiddenError naming the action.
//
// Example usage:
//
//	policy := OrderAccessPolicy{}
//	status, err := policy.AuthorizeCreate(caller, "alice", order.Unknown, false)
//	if errors.Is(err, errs.ErrAccessIsForbidden) {
//	    return err
//	}
type OrderAccessPolicy struct{}

// AuthorizeCreate returns the status the new order must be created with.
// hasStatus reports whether the caller asked for a specific status.
func (OrderAccessPolicy) AuthorizeCreate(
	caller identity.Caller,
	ownerID string,
	requested order.Status,
	hasStatus bool,
) (order.Status, error) {
	if err := caller.Validate(); err != nil {
		return order.Unknown, err
	}

	if caller.IsAdmin() {
		if hasStatus {
			return requested, nil
		}
		return order.Pending, nil
	}

	if !caller.Owns(ownerID) {
		return order.Unknown, errs.NewAccessIsForbiddenError("create order", "orders may only be created for yourself")
	}
	if hasStatus && requested != order.Pending {
		return order.Unknown, errs.NewAccessIsForbiddenError("create order", "only pending orders may be self-created")
	}

	return order.Pending, nil
}

// AuthorizeRead checks that caller may see o.
func (OrderAccessPolicy) AuthorizeRead(caller identity.Caller, o *order.Order) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !caller.CanAccess(o.OwnerID()) {
		return errs.NewAccessIsForbiddenError("get order", "not authorized to access this order")
	}
	return nil
}

// RequireAdmin checks that caller holds the admin role for action.
func (OrderAccessPolicy) RequireAdmin(caller identity.Caller, action string) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errs.NewAccessIsForbiddenError(action, "admin role required")
	}
	return nil
}
