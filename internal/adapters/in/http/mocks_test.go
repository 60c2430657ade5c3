package http

import (
	"context"
	"sync"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeApplicationStatusHandler struct{ mock.Mock }

func (m *MockChangeApplicationStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeApplicationStatusCommand,
) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAttachDocumentHandler struct{ mock.Mock }

func (m *MockAttachDocumentHandler) Handle(
	ctx context.Context,
	cmd commands.AttachApplicationDocumentCommand,
) (application.Document, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(application.Document), args.Error(1)
}

type MockRegisterUserHandler struct{ mock.Mock }

func (m *MockRegisterUserHandler) Handle(ctx context.Context, cmd commands.RegisterUserCommand) (*user.User, error) {
	args := m.Called(ctx, cmd)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockAuthenticateUserHandler struct{ mock.Mock }

func (m *MockAuthenticateUserHandler) Handle(
	ctx context.Context,
	query queries.AuthenticateUserQuery,
) (queries.UserView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.UserView), args.Error(1)
}

type MockGetUserHandler struct{ mock.Mock }

func (m *MockGetUserHandler) Handle(ctx context.Context, query queries.GetUserQuery) (queries.UserView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.UserView), args.Error(1)
}

type MockReconciliationRunner struct{ mock.Mock }

func (m *MockReconciliationRunner) RunNow(ctx context.Context) (commands.RetirePastOrdersResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(commands.RetirePastOrdersResult), args.Error(1)
}

type recordingReporter struct {
	mu      sync.Mutex
	reports []error
}

func (r *recordingReporter) Report(_ string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, err)
}

func (r *recordingReporter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}
