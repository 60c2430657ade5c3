package commands_test

import (
	"errors"
	"testing"
	"time"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, applicants ...commands.Applicant) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Japan",
		time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), applicants)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t,
		commands.Applicant{Name: "Asha Rao", PassportNumber: "z1234567"},
		commands.Applicant{Name: "Ravi Rao", PassportNumber: "z7654321"},
	)

	var stored *order.Order
	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, cmd.OrderID(), stored.ID())
	assert.Equal(t, order.Created, stored.Status())
	require.Len(t, stored.Applications(), 2)
	for _, a := range stored.Applications() {
		assert.Equal(t, application.Submitted, a.Status())
		assert.Equal(t, stored.ID(), a.OrderID())
	}
	assert.Equal(t, "Z1234567", stored.Applications()[0].PassportNumber())
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidApplicant(t *testing.T) {
	cmd := newCreateOrderCommand(t, commands.Applicant{Name: "", PassportNumber: ""})
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(t.Context(), cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, commands.Applicant{Name: "Asha Rao", PassportNumber: "Z1"})

	repo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate key")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
