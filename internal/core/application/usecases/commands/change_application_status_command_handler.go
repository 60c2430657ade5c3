package commands

import (
	"context"
)

type ChangeApplicationStatusCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewChangeApplicationStatusCommandHandler(uowFactory ApplicationUoWFactory) ChangeApplicationStatusCommandHandler {
	return ChangeApplicationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the application, applies the staff decision and saves the
// new status. Past applications are frozen and Past cannot be requested.
func (h *ChangeApplicationStatusCommandHandler) Handle(ctx context.Context, cmd ChangeApplicationStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()
	app, err := repo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if err = app.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
