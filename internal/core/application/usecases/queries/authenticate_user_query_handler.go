package queries

import (
	"context"
	"errors"

	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/pkg/errs"
)

// UserFinder is the part of the user repository authentication needs.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// AuthenticateUserQueryHandler checks credentials against the stored bcrypt
// hash. Unknown emails and wrong passwords both yield
// user.ErrInvalidCredentials.
type AuthenticateUserQueryHandler struct {
	users UserFinder
}

func NewAuthenticateUserQueryHandler(users UserFinder) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users}
}

func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}
	if query.Email() == "" || query.Password() == "" {
		return UserView{}, user.ErrInvalidCredentials
	}

	u, err := h.users.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return UserView{}, user.ErrInvalidCredentials
		}
		return UserView{}, err
	}

	if err = u.CheckPassword(query.Password()); err != nil {
		return UserView{}, err
	}

	return UserView{ID: u.ID(), Email: u.Email(), Name: u.Name(), Role: u.Role()}, nil
}
