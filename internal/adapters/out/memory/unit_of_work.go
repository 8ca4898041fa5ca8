package memory

import (
	"context"

	"oms/internal/core/ports"
)

// UnitOfWorkFactory hands out units of work over one shared repository.
// Operations are applied immediately; Commit and Rollback only close the
// unit, so there is no isolation between concurrent units.
type UnitOfWorkFactory struct {
	repo *OrderRepository
}

func NewUnitOfWorkFactory(repo *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repo: repo}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repo: f.repo}
}

type UnitOfWork struct {
	repo *OrderRepository
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.repo
}
