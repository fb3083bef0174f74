package cmd

import (
	"context"
	"log/slog"

	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/ordercontext"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	registry   *ordercontext.Registry
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		registry:   ordercontext.NewRegistry(uowFactory, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) menuRepository() ports.MenuRepository {
	return c.uowFactory.Create().MenuRepository()
}

func (c *CompositionRoot) CreateCreateMenuCommandHandler() commands.CreateMenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuCommandHandler() commands.AddMenuCommandHandler {
	return commands.NewAddMenuCommandHandler(c.menuRepository(), c.registry, services.NewOrderComposer())
}

func (c *CompositionRoot) CreateAdjustQuantityCommandHandler() commands.AdjustQuantityCommandHandler {
	return commands.NewAdjustQuantityCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateChangeComboTypeCommandHandler() commands.ChangeComboTypeCommandHandler {
	return commands.NewChangeComboTypeCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateCancelLineCommandHandler() commands.CancelLineCommandHandler {
	return commands.NewCancelLineCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateSweepIdleSessionsCommandHandler() commands.SweepIdleSessionsCommandHandler {
	return commands.NewSweepIdleSessionsCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetMenusQueryHandler() queries.GetMenusQueryHandler {
	return queries.NewGetMenusQueryHandler(c.menuRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateAddMenuCommandHandler(),
		c.CreateAdjustQuantityCommandHandler(),
		c.CreateChangeComboTypeCommandHandler(),
		c.CreateCancelLineCommandHandler(),
		c.CreateGetMenusQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.registry,
		c.logger,
	)
}

func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	limiter := httpadapter.NewRateLimiter(c.configs.RateLimit, c.configs.RateBurst)
	return httpadapter.NewEcho(ctx, c.CreateServer(), limiter, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateSweepIdleSessionsCommandHandler()
	return jobs.NewJobManager(&handler, c.configs.SweepSchedule, c.configs.SessionIdleTTL, c.logger)
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}
