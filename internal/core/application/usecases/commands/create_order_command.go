package commands

import (
	"errors"
	"strings"

	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order.
//
// The constructor checks structure only: owner present, items valid, status
// enumerated. Whether the caller may place this order is decided by the
// handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, "user-1", []order.ItemInput{
//	    {ProductID: "p1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: 1},
//	}, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller    identity.Caller
	ownerID   string
	items     []order.Item
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw request. status is nil when the
// caller did not ask for one. Every structural error is reported.
func NewCreateOrderCommand(
	caller identity.Caller,
	ownerID string,
	items []order.ItemInput,
	status *string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := caller.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.caller = caller

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setItems(items),
		cmd.setStatus(status),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Caller() identity.Caller {
	return c.caller
}

// OwnerID returns the requested owner of the new order.
func (c CreateOrderCommand) OwnerID() string {
	return c.ownerID
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Status returns the requested status and whether one was given.
func (c CreateOrderCommand) Status() (order.Status, bool) {
	return c.status, c.hasStatus
}

func (c *CreateOrderCommand) setOwnerID(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return errs.NewValueIsRequiredError("user_id")
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []order.ItemInput) error {
	items, err := order.NewItems(inputs)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setStatus(status *string) error {
	if status == nil {
		return nil
	}

	s, err := order.ParseStatus(*status)
	if err != nil {
		return err
	}

	c.status = s
	c.hasStatus = true
	return nil
}
