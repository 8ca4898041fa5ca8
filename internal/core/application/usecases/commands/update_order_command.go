package commands

import (
	"errors"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial update of an order by an admin.
//
// The role check happens before anything else is looked at, so a customer
// learns nothing about whether the id was well formed.
//
// Example:
//
//	status := "Shipped"
//	cmd, err := NewUpdateOrderCommand(admin, "0190f1c2a4b87c3d9e0f112233445566", &status, nil)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	caller  identity.Caller
	orderID kernel.ID
	patch   order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand authorizes the caller and validates the id and the
// present patch fields. A nil status or items pointer means the field is
// absent.
func NewUpdateOrderCommand(
	caller identity.Caller,
	orderID string,
	status *string,
	items *[]order.ItemInput,
) (UpdateOrderCommand, error) {
	if err := (services.OrderAccessPolicy{}).RequireAdmin(caller, "update order"); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd := UpdateOrderCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPatch(status, items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID string) error {
	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setPatch(status *string, items *[]order.ItemInput) error {
	var opts []order.PatchOption
	var all []error

	if status != nil {
		s, err := order.ParseStatus(*status)
		if err != nil {
			all = append(all, err)
		} else {
			opts = append(opts, order.WithStatus(s))
		}
	}

	if items != nil {
		parsed, err := order.NewItems(*items)
		if err != nil {
			all = append(all, err)
		} else {
			opts = append(opts, order.WithItems(parsed))
		}
	}

	if err := errors.Join(all...); err != nil {
		return err
	}

	patch, err := order.NewPatch(opts...)
	if err != nil {
		return err
	}

	c.patch = patch
	return nil
}
