package commands_test

import (
	"context"

	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/domain/model/identity"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Insert(ctx context.Context, o *order.Order) (kernel.ID, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Find(
	ctx context.Context,
	filter ports.OrderFilter,
	sort ports.OrderSort,
	skip, limit int64,
) ([]*order.Order, error) {
	args := m.Called(ctx, filter, sort, skip, limit)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter ports.OrderFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateFields(ctx context.Context, id kernel.ID, fields ports.OrderFields) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func mustCaller(subject string, role identity.Role) identity.Caller {
	c, err := identity.NewCaller(subject, role)
	if err != nil {
		panic(err)
	}
	return c
}

func widgetInputs() []order.ItemInput {
	return []order.ItemInput{
		{ProductID: "p1", Name: "Widget", Price: decimal.RequireFromString("500.00"), Quantity: 2},
		{ProductID: "p2", Name: "Gadget", Price: decimal.RequireFromString("250.00"), Quantity: 1},
	}
}

func ptr[T any](v T) *T { return &v }
