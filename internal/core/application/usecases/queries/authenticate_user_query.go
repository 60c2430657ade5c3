package queries

import (
	"errors"

	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery never fails on content; an empty email or
// password simply does not authenticate.
func NewAuthenticateUserQuery(email, password string) AuthenticateUserQuery {
	return AuthenticateUserQuery{
		email:    user.NormalizeEmail(email),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

func (q AuthenticateUserQuery) Email() string    { return q.email }
func (q AuthenticateUserQuery) Password() string { return q.password }
