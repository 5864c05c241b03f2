package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	nethttp "net/http"
	"time"

	httpin "kitchen/internal/adapters/in/http"
	"kitchen/internal/adapters/out/eventlog"
	"kitchen/internal/adapters/out/postgres"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/ports"
	"kitchen/internal/jobs"
	"kitchen/internal/pkg/clock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      clock.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	async      []*eventlog.AsyncPublisher
}

// NewCompositionRoot wires the application over gormDB. Domain events are
// logged and then queued for each of notifiers, which deliver in the
// background. Close drains the queues.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	clk clock.Clock,
	notifiers ...ports.EventPublisher,
) CompositionRoot {
	var async []*eventlog.AsyncPublisher
	downstream := make([]ports.EventPublisher, 0, len(notifiers))
	for _, n := range notifiers {
		if n == nil {
			continue
		}
		a := eventlog.NewAsyncPublisher(n, eventlog.DefaultQueueSize, logger)
		async = append(async, a)
		downstream = append(downstream, a)
	}

	publisher := eventlog.NewPublisher(logger.With("component", "events"), downstream...)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		clock:      clk,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger, config.StoreTimezone),
		async:      async,
	}
}

// Close waits for queued notifications to be delivered, up to ctx.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var failures []error
	for _, a := range c.async {
		failures = append(failures, a.Close(ctx))
	}
	return errors.Join(failures...)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateMenuCommandHandler() commands.MenuCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMenuCommandHandler(f)
}

func (c *CompositionRoot) CreateCustomerCommandHandler() commands.CustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCustomerCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSettingsCommandHandler() commands.SettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateBannerCommandHandler() commands.BannerCommandHandler {
	var f commands.BannerUoWFactory = FuncBannerUoWFactory(func() commands.BannerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBannerCommandHandler(f)
}

func (c *CompositionRoot) CreateCategoryCommandHandler() commands.CategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewCommandHandler() commands.ReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSessionCommandHandler() commands.SessionCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSessionCommandHandler(f, c.clock, c.config.SessionTTL)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.settingsReader())
}

func (c *CompositionRoot) CreateEvaluateAvailabilityQueryHandler() queries.EvaluateAvailabilityQueryHandler {
	return queries.NewEvaluateAvailabilityQueryHandler(c.settingsReader(), c.clock)
}

func (c *CompositionRoot) CreateQuoteCartQueryHandler() queries.QuoteCartQueryHandler {
	reader := c.uowFactory.Create()
	return queries.NewQuoteCartQueryHandler(
		reader.SettingsRepository(),
		reader.MenuRepository(),
		reader.CustomerRepository(),
	)
}

func (c *CompositionRoot) CreateCheckEligibilityQueryHandler() queries.CheckEligibilityQueryHandler {
	reader := c.uowFactory.Create()
	return queries.NewCheckEligibilityQueryHandler(
		reader.SettingsRepository(),
		reader.MenuRepository(),
		reader.CustomerRepository(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateAuthenticateMerchantQueryHandler() queries.AuthenticateMerchantQueryHandler {
	return queries.NewAuthenticateMerchantQueryHandler(c.gormDB, c.clock)
}

// CreateHandlers builds every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceOrder:      c.CreatePlaceOrderCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderCommandHandler(),
		Menu:            c.CreateMenuCommandHandler(),
		Customers:       c.CreateCustomerCommandHandler(),
		Settings:        c.CreateSettingsCommandHandler(),
		Banners:         c.CreateBannerCommandHandler(),
		Categories:      c.CreateCategoryCommandHandler(),
		Reviews:         c.CreateReviewCommandHandler(),
		Sessions:        c.CreateSessionCommandHandler(),

		GetOrders:            queries.NewGetOrdersQueryHandler(c.gormDB),
		GetOrder:             queries.NewGetOrderQueryHandler(c.gormDB),
		GetCustomers:         queries.NewGetCustomersQueryHandler(c.gormDB),
		GetCustomer:          queries.NewGetCustomerQueryHandler(c.gormDB),
		GetMenu:              queries.NewGetMenuQueryHandler(c.gormDB),
		GetMenuItem:          queries.NewGetMenuItemQueryHandler(c.gormDB),
		GetBanners:           queries.NewGetBannersQueryHandler(c.gormDB),
		GetCategories:        queries.NewGetCategoriesQueryHandler(c.gormDB),
		GetReviews:           queries.NewGetReviewsQueryHandler(c.gormDB),
		GetSettings:          c.CreateGetSettingsQueryHandler(),
		EvaluateAvailability: c.CreateEvaluateAvailabilityQueryHandler(),
		QuoteCart:            c.CreateQuoteCartQueryHandler(),
		CheckEligibility:     c.CreateCheckEligibilityQueryHandler(),
		AuthenticateMerchant: c.CreateAuthenticateMerchantQueryHandler(),
	}
}

// CreateEcho builds the HTTP engine with every route registered.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	doc, err := httpin.LoadSpec()
	if err != nil {
		return nil, err
	}

	handlers := c.CreateHandlers()
	return httpin.NewEcho(
		httpin.NewServer(handlers),
		doc,
		handlers.AuthenticateMerchant,
		c.logger.With("component", "http"),
	)
}

// CreateHTTPServer wraps the echo engine in a server listening on the configured port.
func (c *CompositionRoot) CreateHTTPServer() (*nethttp.Server, error) {
	e, err := c.CreateEcho()
	if err != nil {
		return nil, err
	}
	return &nethttp.Server{
		Addr:              net.JoinHostPort("0.0.0.0", c.config.HTTPPort),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSessionCommandHandler(),
		c.config.SessionSweepSchedule,
		c.logger.With("component", "jobs"),
	)
}

// Migrate brings the schema up to date.
func (c *CompositionRoot) Migrate() error {
	if err := postgres.Migrate(c.gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncBannerUoWFactory func() commands.BannerUoW

func (f FuncBannerUoWFactory) Create() commands.BannerUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

func (c *CompositionRoot) settingsReader() queries.SettingsReader {
	return c.uowFactory.Create().SettingsRepository()
}
