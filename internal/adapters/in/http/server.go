package http

import (
	"context"
	"log/slog"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/user"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	ChangeApplicationStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeApplicationStatusCommand) error
	}
	AttachDocumentHandler interface {
		Handle(ctx context.Context, cmd commands.AttachApplicationDocumentCommand) (application.Document, error)
	}
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	AuthenticateUserHandler interface {
		Handle(ctx context.Context, query queries.AuthenticateUserQuery) (queries.UserView, error)
	}
	GetUserHandler interface {
		Handle(ctx context.Context, query queries.GetUserQuery) (queries.UserView, error)
	}
	// ReconciliationRunner triggers the status reconciliation job on demand.
	ReconciliationRunner interface {
		RunNow(ctx context.Context) (commands.RetirePastOrdersResult, error)
	}
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateOrder             CreateOrderHandler
	ChangeOrderStatus       ChangeOrderStatusHandler
	ChangeApplicationStatus ChangeApplicationStatusHandler
	AttachDocument          AttachDocumentHandler
	RegisterUser            RegisterUserHandler

	GetOrders        GetOrdersHandler
	GetOrder         GetOrderHandler
	AuthenticateUser AuthenticateUserHandler
	GetUser          GetUserHandler

	Reconciliation ReconciliationRunner
}

// Server handles HTTP requests by translating them into commands and
// queries.
type Server struct {
	handlers Handlers
	sessions SessionStore
	cookie   string
	logger   *slog.Logger
}

func NewServer(handlers Handlers, sessions SessionStore, cookieName string, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		sessions: sessions,
		cookie:   cookieName,
		logger:   logger.With("component", "http_server"),
	}
}
