// Package guard detects value objects, commands and queries that were built
// as zero values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller passes no specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types whose constructor enforces invariants.
// Only NewConstructorGuard produces a guard that validates.
//
//	type RetirePastOrdersCommand struct {
//	    asOf  time.Time
//	    guard guard.ConstructorGuard
//	}
//
//	func (c RetirePastOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrRetirePastOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError (or
// ErrDefaultConstructorGuard when validationError is nil) otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
