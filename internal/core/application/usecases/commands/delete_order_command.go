package commands

import (
	"errors"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/services"
	"oms/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents the removal of an order by an admin.
// Orders in any status may be deleted.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand checks the admin role first, then the id.
func NewDeleteOrderCommand(caller identity.Caller, orderID string) (DeleteOrderCommand, error) {
	if err := (services.OrderAccessPolicy{}).RequireAdmin(caller, "delete order"); err != nil {
		return DeleteOrderCommand{}, err
	}

	id, err := kernel.IDFromString(orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
