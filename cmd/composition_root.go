package cmd

import (
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/rediscache"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/metrics"
	"dispatch/internal/seed"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type CompositionRoot struct {
	cfg        Config
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
	sampler    services.DistanceSampler
	rankCache  *rediscache.RankReportCache

	registry          *prometheus.Registry
	assignmentMetrics *metrics.Assignment
	httpMetrics       *metrics.HTTP

	// Shared so that every caller goes through the same assignment lock.
	createDeliveryHandler commands.CreateDeliveryCommandHandler
}

type Option func(*CompositionRoot)

func WithLogger(logger *slog.Logger) Option {
	return func(c *CompositionRoot) { c.logger = logger }
}

// WithDistanceSampler replaces the uniformly random sampler.
func WithDistanceSampler(sampler services.DistanceSampler) Option {
	return func(c *CompositionRoot) { c.sampler = sampler }
}

// WithRankCache caches ranking reports and invalidates them on every change.
func WithRankCache(cache *rediscache.RankReportCache) Option {
	return func(c *CompositionRoot) { c.rankCache = cache }
}

func NewCompositionRoot(cfg Config, uowFactory ports.UnitOfWorkFactory, opts ...Option) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		uowFactory: uowFactory,
		logger:     slog.Default(),
		registry:   prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	var err error
	if c.assignmentMetrics, err = metrics.NewAssignment(c.registry); err != nil {
		return nil, err
	}
	if c.httpMetrics, err = metrics.NewHTTP(c.registry); err != nil {
		return nil, err
	}

	observers := []commands.AssignmentObserver{c.assignmentMetrics}
	if c.rankCache != nil {
		observers = append(observers, c.rankCache)
	}

	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	c.createDeliveryHandler = commands.NewCreateDeliveryCommandHandler(f, c.sampler, observers...)

	return c, nil
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateCreateCityCommandHandler() commands.CreateCityCommandHandler {
	var f commands.CityUoWFactory = FuncCityUoWFactory(func() commands.CityUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCityCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterCommandHandler() commands.RegisterCommandHandler {
	var f commands.RegistryUoWFactory = FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})

	if c.rankCache != nil {
		return commands.NewRegisterCommandHandler(f, c.rankCache)
	}
	return commands.NewRegisterCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return c.createDeliveryHandler
}

func (c *CompositionRoot) CreateGetOrderPartiesQueryHandler() queries.GetOrderPartiesQueryHandler {
	return queries.NewGetOrderPartiesQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetDriverRankReportQueryHandler() queries.GetDriverRankReportQueryHandler {
	if c.rankCache != nil {
		return queries.NewGetDriverRankReportQueryHandler(c.readUoWFactory(), c.rankCache)
	}
	return queries.NewGetDriverRankReportQueryHandler(c.readUoWFactory(), nil)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDriverRankReportQueryHandler(),
		c.cfg.RankReportSchedule,
		c.cfg.RankReportTop,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(c.CreateCreateCityCommandHandler(), c.CreateRegisterCommandHandler(), c.logger)
}

// CreateHTTPServer builds the echo instance with every route registered.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCreateCityCommandHandler(),
		c.CreateRegisterCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateGetOrderPartiesQueryHandler(),
		c.CreateGetDeliveryQueryHandler(),
		c.CreateGetDriverRankReportQueryHandler(),
		c.logger,
	)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:   c.logger,
		Metrics:  c.httpMetrics,
		Gatherer: c.registry,
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

type FuncCityUoWFactory func() commands.CityUoW

func (f FuncCityUoWFactory) Create() commands.CityUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
