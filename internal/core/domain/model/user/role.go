package user

import (
	"fmt"
	"strings"

	"visadesk/internal/pkg/errs"
)

// Role decides which API surfaces a user may reach.
type Role string

const (
	Customer Role = "customer"
	Expert   Role = "expert"
	Support  Role = "support"
	Admin    Role = "admin"
)

func ParseRole(name string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(name)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Customer, Expert, Support, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", string(r)))
	}
}

// IsStaff reports whether the role works on orders rather than placing them.
func (r Role) IsStaff() bool {
	return r == Expert || r == Support || r == Admin
}

func (r Role) String() string { return string(r) }
