package cmd

import (
	"log/slog"

	httpin "visadesk/internal/adapters/in/http"
	"visadesk/internal/adapters/out/postgres"
	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/ports"
	"visadesk/internal/jobs"
	"visadesk/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	storage    ports.FileStorage
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	storage ports.FileStorage,
	clk clock.Clock,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		storage:    storage,
		clock:      clk,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRetirePastOrdersCommandHandler() commands.RetirePastOrdersCommandHandler {
	var f commands.RetirementUoWFactory = FuncRetirementUoWFactory(func() commands.RetirementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRetirePastOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeApplicationStatusCommandHandler() commands.ChangeApplicationStatusCommandHandler {
	var f commands.ApplicationUoWFactory = FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeApplicationStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAttachApplicationDocumentCommandHandler() commands.AttachApplicationDocumentCommandHandler {
	var f commands.DocumentUoWFactory = FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachApplicationDocumentCommandHandler(f, c.storage)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

// CreateAuthenticateUserQueryHandler reads users outside any transaction.
func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateStatusReconciliationJob(metrics jobs.JobMetrics) *jobs.StatusReconciliationJob {
	handler := c.CreateRetirePastOrdersCommandHandler()
	return jobs.NewStatusReconciliationJob(&handler, c.clock, c.cfg.ReconciliationSchedule, metrics, c.logger)
}

// CreateHTTPHandlers wires every use case the API exposes. job serves the
// manual reconciliation trigger.
func (c *CompositionRoot) CreateHTTPHandlers(job httpin.ReconciliationRunner) httpin.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()
	changeAppStatus := c.CreateChangeApplicationStatusCommandHandler()
	attachDocument := c.CreateAttachApplicationDocumentCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()

	return httpin.Handlers{
		CreateOrder:             &createOrder,
		ChangeOrderStatus:       &changeStatus,
		ChangeApplicationStatus: &changeAppStatus,
		AttachDocument:          &attachDocument,
		RegisterUser:            &registerUser,
		GetOrders:               c.CreateGetOrdersQueryHandler(),
		GetOrder:                c.CreateGetOrderQueryHandler(),
		AuthenticateUser:        c.CreateAuthenticateUserQueryHandler(),
		GetUser:                 c.CreateGetUserQueryHandler(),
		Reconciliation:          job,
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRetirementUoWFactory func() commands.RetirementUoW

func (f FuncRetirementUoWFactory) Create() commands.RetirementUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
