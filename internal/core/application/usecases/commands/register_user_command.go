package commands

import (
	"errors"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account. The password is hashed by the
// handler and never stored in plain text.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	name     string
	role     user.Role
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(
	userID kernel.UUID,
	email, name string,
	role user.Role,
	password string,
) (RegisterUserCommand, error) {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		userID:   userID,
		email:    user.NormalizeEmail(email),
		name:     name,
		role:     role,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Name() string        { return c.name }
func (c RegisterUserCommand) Role() user.Role     { return c.role }
func (c RegisterUserCommand) Password() string    { return c.password }
