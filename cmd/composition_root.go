package cmd

import (
	"log/slog"
	"time"

	httpin "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/in/console"
	"canteen/internal/adapters/out/memory"
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/core/application/checkout"
	"canteen/internal/core/application/payment"
	"canteen/internal/core/application/shopping"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/services"
	"canteen/internal/core/ports"
	"canteen/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sessions   *memory.SessionStore
	clock      commands.Clock
}

// NewCompositionRoot wires the application over an open database. Order
// events raised in committed transactions go to publisher.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	clock := commands.Clock(time.Now)
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
		sessions:   memory.NewSessionStore(clock),
		clock:      clock,
	}
}

func (c *CompositionRoot) Sessions() *memory.SessionStore {
	return c.sessions
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRestockMenuItemCommandHandler() commands.RestockMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRestockMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCommitOrderCommandHandler() commands.CommitOrderCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommitOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateSubmitFeedbackCommandHandler() commands.SubmitFeedbackCommandHandler {
	var f commands.FeedbackUoWFactory = FuncFeedbackUoWFactory(func() commands.FeedbackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitFeedbackCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueReportQueryHandler() queries.GetRevenueReportQueryHandler {
	return queries.NewGetRevenueReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFeedbacksQueryHandler() queries.GetFeedbacksQueryHandler {
	return queries.NewGetFeedbacksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingFeedbackQueryHandler() queries.GetPendingFeedbackQueryHandler {
	return queries.NewGetPendingFeedbackQueryHandler(c.gormDB)
}

// CreateShoppingService edits carts against the catalog read outside any
// transaction; stock is checked again when the order commits.
func (c *CompositionRoot) CreateShoppingService() (*shopping.Service, error) {
	return shopping.NewService(c.sessions, menurepo.NewGormMenuRepository(c.gormDB))
}

func (c *CompositionRoot) CreateCheckoutService() (*checkout.Service, error) {
	pricing, err := services.NewPricingEngine(c.cfg.Pricing)
	if err != nil {
		return nil, err
	}
	processor, err := payment.NewProcessor(c.cfg.Payment)
	if err != nil {
		return nil, err
	}
	ledger := c.CreateCommitOrderCommandHandler()
	return checkout.NewService(c.sessions, pricing, processor, &ledger, c.clock)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) (*jobs.JobManager, error) {
	return jobs.NewJobManager(c.sessions, c.CreateGetMenuQueryHandler(), c.cfg.Jobs(), logger)
}

// HTTPHandlers bundles every use case the HTTP API serves.
func (c *CompositionRoot) HTTPHandlers() (httpin.Handlers, error) {
	carts, err := c.CreateShoppingService()
	if err != nil {
		return httpin.Handlers{}, err
	}
	checkoutService, err := c.CreateCheckoutService()
	if err != nil {
		return httpin.Handlers{}, err
	}

	addMenuItem := c.CreateAddMenuItemCommandHandler()
	restock := c.CreateRestockMenuItemCommandHandler()
	setStatus := c.CreateSetOrderStatusCommandHandler()
	submitFeedback := c.CreateSubmitFeedbackCommandHandler()

	return httpin.Handlers{
		Menu:            c.CreateGetMenuQueryHandler(),
		AddMenuItem:     &addMenuItem,
		Restock:         &restock,
		SetOrderStatus:  &setStatus,
		SubmitFeedback:  &submitFeedback,
		OrderHistory:    c.CreateGetOrderHistoryQueryHandler(),
		OrderDetails:    c.CreateGetOrderDetailsQueryHandler(),
		ActiveOrders:    c.CreateGetActiveOrdersQueryHandler(),
		RevenueReport:   c.CreateGetRevenueReportQueryHandler(),
		Feedbacks:       c.CreateGetFeedbacksQueryHandler(),
		PendingFeedback: c.CreateGetPendingFeedbackQueryHandler(),
		Carts:           carts,
		Checkout:        checkoutService,
	}, nil
}

// TillDependencies bundles the use cases the console till drives.
func (c *CompositionRoot) TillDependencies() (console.Dependencies, error) {
	carts, err := c.CreateShoppingService()
	if err != nil {
		return console.Dependencies{}, err
	}
	checkoutService, err := c.CreateCheckoutService()
	if err != nil {
		return console.Dependencies{}, err
	}

	return console.Dependencies{
		Menu:     c.CreateGetMenuQueryHandler(),
		Carts:    carts,
		Checkout: checkoutService,
		Revenue:  c.CreateGetRevenueReportQueryHandler(),
		History:  c.CreateGetOrderHistoryQueryHandler(),
	}, nil
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncFeedbackUoWFactory func() commands.FeedbackUoW

func (f FuncFeedbackUoWFactory) Create() commands.FeedbackUoW {
	return f()
}
