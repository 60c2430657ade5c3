package commands

import (
	"context"
	"errors"

	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/core/ports"
	"visadesk/internal/pkg/errs"
)

type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the user and returns it. ports.ErrEmailTaken is returned
// when the email is already registered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), cmd.Name(), cmd.Role(), cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	_, err = repo.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return nil, ports.ErrEmailTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
