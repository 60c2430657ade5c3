package commands

import (
	"errors"
	"time"

	"visadesk/internal/pkg/errs"
	"visadesk/internal/pkg/guard"
)

var ErrRetirePastOrdersCommandIsNotConstructed = errors.New(
	"RetirePastOrdersCommand must be created via NewRetirePastOrdersCommand constructor",
)

// RetirePastOrdersCommand asks for every Complete order whose travel date is
// strictly before AsOf to be moved, with its applications, to Past.
//
// Example:
//
//	cmd, err := NewRetirePastOrdersCommand(clock.Now())
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type RetirePastOrdersCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewRetirePastOrdersCommand(asOf time.Time) (RetirePastOrdersCommand, error) {
	if asOf.IsZero() {
		return RetirePastOrdersCommand{}, errs.NewValueIsRequiredError("asOf")
	}

	return RetirePastOrdersCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RetirePastOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRetirePastOrdersCommandIsNotConstructed)
}

// AsOf is the reference time travel dates are compared against.
func (c RetirePastOrdersCommand) AsOf() time.Time {
	return c.asOf
}
