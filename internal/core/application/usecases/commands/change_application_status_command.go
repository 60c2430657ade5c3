package commands

import (
	"errors"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/guard"
)

var ErrChangeApplicationStatusCommandIsNotConstructed = errors.New(
	"ChangeApplicationStatusCommand must be created via NewChangeApplicationStatusCommand constructor",
)

// ChangeApplicationStatusCommand is a staff decision on one application.
type ChangeApplicationStatusCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	status        application.Status

	guard guard.ConstructorGuard
}

func NewChangeApplicationStatusCommand(
	applicationID kernel.UUID,
	status application.Status,
) (ChangeApplicationStatusCommand, error) {
	cmd := ChangeApplicationStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(applicationID.Validate(), status.Validate()); err != nil {
		return ChangeApplicationStatusCommand{}, err
	}
	cmd.applicationID = applicationID
	cmd.status = status

	return cmd, nil
}

func (c ChangeApplicationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeApplicationStatusCommandIsNotConstructed)
}

func (c ChangeApplicationStatusCommand) ApplicationID() kernel.UUID { return c.applicationID }
func (c ChangeApplicationStatusCommand) Status() application.Status { return c.status }
