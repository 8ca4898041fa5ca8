package cmd

import (
	"context"
	"log/slog"

	apihttp "oms/internal/adapters/in/http"
	"oms/internal/adapters/out/jwtidentity"
	"oms/internal/adapters/out/memory"
	"oms/internal/adapters/out/postgres"
	"oms/internal/adapters/out/postgres/orderrepo"
	"oms/internal/core/application/usecases/commands"
	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/ports"
	"oms/internal/jobs"
	"oms/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	repo       ports.OrderRepository
	uowFactory ports.UnitOfWorkFactory
	ping       apihttp.PingFunc
	verifier   ports.IdentityVerifier
	clock      kernel.Clock
	logger     *slog.Logger
	metrics    *telemetry.Metrics
}

// NewCompositionRoot wires the application. A nil gormDB selects the
// in-memory store.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) (CompositionRoot, error) {
	verifier, err := jwtidentity.NewVerifier(configs.JWTSecretKey, configs.JWTIssuer)
	if err != nil {
		return CompositionRoot{}, err
	}

	root := CompositionRoot{
		configs:  configs,
		verifier: verifier,
		clock:    kernel.SystemClock{},
		logger:   logger,
		metrics:  metrics,
	}

	if gormDB == nil {
		repo := memory.NewOrderRepository()
		root.repo = repo
		root.uowFactory = memory.NewUnitOfWorkFactory(repo)
		root.ping = func(context.Context) error { return nil }
		return root, nil
	}

	root.repo = orderrepo.NewGormOrderRepository(gormDB)
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	root.ping = func(ctx context.Context) error { return postgres.Ping(ctx, gormDB) }
	return root, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.clock, c.configs.TransitionPolicy())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return apihttp.NewRouter(c.CreateServer(), apihttp.RouterConfig{
		Logger:   c.logger,
		Metrics:  c.metrics,
		Verifier: c.verifier,
		Ping:     c.ping,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCountOrdersByStatusQueryHandler(),
		c.metrics.Orders,
		c.configs.MetricsSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
