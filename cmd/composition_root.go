package cmd

import (
	"context"
	"log/slog"

	"kurirkan/internal/adapters/in/http"
	"kurirkan/internal/adapters/out/postgres"
	"kurirkan/internal/adapters/out/storage"
	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/application/usecases/queries"
	"kurirkan/internal/core/ports"
	"kurirkan/internal/jobs"
	"kurirkan/internal/pkg/auth"

	"gorm.io/gorm"
)

// CompositionRoot wires the storage, the token issuer and every handler
// together. Created once at startup after the state has been loaded.
type CompositionRoot struct {
	state      *storage.State
	store      ports.CollectionStore
	uowFactory *storage.UnitOfWorkFactory
	issuer     auth.TokenIssuer
	logger     *slog.Logger
}

// NewCompositionRoot loads the persisted state through the GORM collection
// store and prepares the shared dependencies.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	store := postgres.NewGormCollectionStore(gormDB)

	state, err := storage.LoadState(context.Background(), store)
	if err != nil {
		return CompositionRoot{}, err
	}

	issuer, err := auth.NewTokenIssuer(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		state:      state,
		store:      store,
		uowFactory: storage.NewUnitOfWorkFactory(state, store),
		issuer:     issuer,
		logger:     logger,
	}, nil
}

// TokenIssuer exposes the issuer for the HTTP auth middleware.
func (c *CompositionRoot) TokenIssuer() auth.TokenIssuer {
	return c.issuer
}

func (c *CompositionRoot) create() ports.UnitOfWork {
	return c.uowFactory.Create()
}

// CreateServerHandlers bundles every handler the HTTP server exposes.
func (c *CompositionRoot) CreateServerHandlers() http.Handlers {
	return http.Handlers{
		RegisterCustomer:     c.CreateRegisterCustomerCommandHandler(),
		LoginCustomer:        c.CreateLoginCustomerCommandHandler(),
		LoginDriver:          c.CreateLoginDriverCommandHandler(),
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AssignOrder:          c.CreateAssignOrderCommandHandler(),
		AdvanceOrderStatus:   c.CreateAdvanceOrderStatusCommandHandler(),
		AddDriver:            c.CreateAddDriverCommandHandler(),
		UpdateDriver:         c.CreateUpdateDriverCommandHandler(),
		DeleteDriver:         c.CreateDeleteDriverCommandHandler(),
		SetDriverDuty:        c.CreateSetDriverDutyCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),
		UpdateSettings:       c.CreateUpdateSettingsCommandHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
		GetPendingQueue:      c.CreateGetPendingQueueQueryHandler(),
		GetAllDrivers:        c.CreateGetAllDriversQueryHandler(),
		GetNotifications:     c.CreateGetNotificationsQueryHandler(),
		GetSettings:          c.CreateGetSettingsQueryHandler(),
	}
}

// CreateJobManager wires the background jobs over the shared handlers and
// persistence pair.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.CreateCleanupNotificationsCommandHandler(),
		c.state,
		c.store,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginCustomerCommandHandler() commands.LoginCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.create()
	})
	return commands.NewLoginCustomerCommandHandler(f, c.issuer)
}

func (c *CompositionRoot) CreateLoginDriverCommandHandler() commands.LoginDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.create()
	})
	return commands.NewLoginDriverCommandHandler(f, c.issuer)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignOrderCommandHandler() commands.AssignOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.create()
	})
	return commands.NewAssignOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.create()
	})
	return commands.NewExpirePendingOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDriverCommandHandler() commands.AddDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.create()
	})
	return commands.NewAddDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.create()
	})
	return commands.NewUpdateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDriverDutyCommandHandler() commands.SetDriverDutyCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.create()
	})
	return commands.NewSetDriverDutyCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateCleanupNotificationsCommandHandler() commands.CleanupNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.create()
	})
	return commands.NewCleanupNotificationsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.create()
	})
	return commands.NewUpdateSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetPendingQueueQueryHandler() queries.GetPendingQueueQueryHandler {
	return queries.NewGetPendingQueueQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() queries.GetNotificationsQueryHandler {
	return queries.NewGetNotificationsQueryHandler(c.readFactory())
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.readFactory())
}

func (c *CompositionRoot) readFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
