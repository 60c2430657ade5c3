package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
	"visadesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentFixture struct {
	order       *order.Order
	application *application.Application
	uow         *MockUnitOfWork
	factory     *MockDocumentUoWFactory
	orders      *MockOrderRepository
	apps        *MockApplicationRepository
	storage     *MockFileStorage
}

func newDocumentFixture(t *testing.T) documentFixture {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Schengen", time.Now().AddDate(0, 2, 0))
	require.NoError(t, err)
	a, err := application.NewApplication(kernel.NewUUID(), o.ID(), "Asha Rao", "Z1234567")
	require.NoError(t, err)
	require.NoError(t, o.AddApplication(a))

	f := documentFixture{
		order:       o,
		application: a,
		uow:         new(MockUnitOfWork),
		factory:     new(MockDocumentUoWFactory),
		orders:      new(MockOrderRepository),
		apps:        new(MockApplicationRepository),
		storage:     new(MockFileStorage),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	f.uow.On("ApplicationRepository").Return(f.apps)
	f.uow.On("OrderRepository").Return(f.orders)
	f.apps.On("Get", mock.Anything, a.ID()).Return(a, nil).Once()
	return f
}

func (f documentFixture) command(t *testing.T, requester commands.Requester) commands.AttachApplicationDocumentCommand {
	t.Helper()
	cmd, err := commands.NewAttachApplicationDocumentCommand(
		f.application.ID(), kernel.NewUUID(), requester,
		`C:\scans\passport.pdf`, "application/pdf", strings.NewReader("%PDF-1.7"),
	)
	require.NoError(t, err)
	return cmd
}

func TestAttachApplicationDocumentCommandHandler_Handle_OwnerUploads(t *testing.T) {
	ctx := t.Context()
	f := newDocumentFixture(t)
	cmd := f.command(t, commands.Requester{UserID: f.order.CustomerID()})
	wantKey := f.application.ID().String() + "/" + cmd.DocumentID().String() + "-passport.pdf"

	f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()
	f.storage.On("Save", ctx, wantKey, cmd.Content()).Return("/uploads/"+wantKey, int64(8), nil).Once()
	f.apps.On("AddDocument", ctx, f.application.ID(), mock.AnythingOfType("application.Document")).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAttachApplicationDocumentCommandHandler(f.factory, f.storage)
	doc, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.DocumentID(), doc.ID())
	assert.Equal(t, "passport.pdf", doc.FileName())
	assert.Equal(t, "/uploads/"+wantKey, doc.StoredPath())
	assert.Equal(t, int64(8), doc.Size())
	assert.Len(t, f.application.Documents(), 1)
	f.storage.AssertExpectations(t)
	f.apps.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestAttachApplicationDocumentCommandHandler_Handle_StaffSkipsOwnership(t *testing.T) {
	ctx := t.Context()
	f := newDocumentFixture(t)
	cmd := f.command(t, commands.Requester{UserID: kernel.NewUUID(), IsStaff: true})

	f.storage.On("Save", ctx, mock.Anything, mock.Anything).Return("/uploads/x", int64(8), nil).Once()
	f.apps.On("AddDocument", ctx, f.application.ID(), mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAttachApplicationDocumentCommandHandler(f.factory, f.storage)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	f.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAttachApplicationDocumentCommandHandler_Handle_ForeignCustomer(t *testing.T) {
	ctx := t.Context()
	f := newDocumentFixture(t)
	cmd := f.command(t, commands.Requester{UserID: kernel.NewUUID()})

	f.orders.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once()

	h := commands.NewAttachApplicationDocumentCommandHandler(f.factory, f.storage)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAccessDenied)
	f.storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachApplicationDocumentCommandHandler_Handle_PastApplication(t *testing.T) {
	ctx := t.Context()
	f := newDocumentFixture(t)
	f.application.Retire()
	cmd := f.command(t, commands.Requester{UserID: kernel.NewUUID(), IsStaff: true})

	h := commands.NewAttachApplicationDocumentCommandHandler(f.factory, f.storage)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, application.ErrApplicationIsPast)
	f.storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachApplicationDocumentCommandHandler_Handle_RecordFailsRemovesFile(t *testing.T) {
	ctx := t.Context()
	f := newDocumentFixture(t)
	cmd := f.command(t, commands.Requester{UserID: kernel.NewUUID(), IsStaff: true})

	f.storage.On("Save", ctx, mock.Anything, mock.Anything).Return("/uploads/x", int64(8), nil).Once()
	f.apps.On("AddDocument", ctx, f.application.ID(), mock.Anything).Return(errors.New("disk full")).Once()
	f.storage.On("Remove", ctx, "/uploads/x").Return(nil).Once()

	h := commands.NewAttachApplicationDocumentCommandHandler(f.factory, f.storage)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	f.storage.AssertExpectations(t)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewAttachApplicationDocumentCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAttachApplicationDocumentCommand(
		kernel.UUID{}, kernel.NewUUID(), commands.Requester{}, "", "", nil,
	)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "fileName")
	assert.Contains(t, err.Error(), "content")
}
