package commands

import (
	"context"
	"path"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/order"
	"visadesk/internal/core/domain/services"
	"visadesk/internal/core/ports"
)

// AttachApplicationDocumentCommandHandler stores an uploaded file and records
// it on the application. The file is removed again if the record cannot be
// written.
type AttachApplicationDocumentCommandHandler struct {
	uowFactory DocumentUoWFactory
	storage    ports.FileStorage
	intake     services.DocumentIntake
}

func NewAttachApplicationDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	storage ports.FileStorage,
) AttachApplicationDocumentCommandHandler {
	return AttachApplicationDocumentCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		intake:     services.NewDocumentIntake(),
	}
}

func (h *AttachApplicationDocumentCommandHandler) Handle(
	ctx context.Context,
	cmd AttachApplicationDocumentCommand,
) (application.Document, error) {
	if err := cmd.Validate(); err != nil {
		return application.Document{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return application.Document{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	applicationRepo := uow.ApplicationRepository()
	app, err := applicationRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return application.Document{}, err
	}

	requester := cmd.Requester()
	var owner *order.Order
	if !requester.IsStaff {
		owner, err = uow.OrderRepository().Get(ctx, app.OrderID())
		if err != nil {
			return application.Document{}, err
		}
	}

	if err = h.intake.Admit(app, owner, requester.UserID, requester.IsStaff); err != nil {
		return application.Document{}, err
	}

	key := path.Join(
		app.ID().String(),
		cmd.DocumentID().String()+"-"+application.BaseFileName(cmd.FileName()),
	)
	storedPath, size, err := h.storage.Save(ctx, key, cmd.Content())
	if err != nil {
		return application.Document{}, err
	}

	doc, err := h.record(ctx, uow, app, cmd, storedPath, size)
	if err != nil {
		_ = h.storage.Remove(ctx, storedPath)
		return application.Document{}, err
	}

	return doc, nil
}

func (h *AttachApplicationDocumentCommandHandler) record(
	ctx context.Context,
	uow DocumentUoW,
	app *application.Application,
	cmd AttachApplicationDocumentCommand,
	storedPath string,
	size int64,
) (application.Document, error) {
	doc, err := application.NewDocument(cmd.DocumentID(), cmd.FileName(), storedPath, cmd.ContentType(), size)
	if err != nil {
		return application.Document{}, err
	}

	if err = app.AttachDocument(doc); err != nil {
		return application.Document{}, err
	}

	if err = uow.ApplicationRepository().AddDocument(ctx, app.ID(), doc); err != nil {
		return application.Document{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return application.Document{}, err
	}

	return doc, nil
}
