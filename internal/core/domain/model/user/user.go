package user

import (
	"errors"
	"net/mail"
	"strings"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordLength = 72
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)

type User struct {
	id           kernel.UUID
	email        string
	name         string
	role         Role
	passwordHash []byte

	isConstructed bool
}

// NewUser registers a user and hashes the plain-text password.
func NewUser(id kernel.UUID, email, name string, role Role, password string) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setRole(role),
		validatePassword(password),
	); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.passwordHash = hash

	return u, nil
}

// RestoreUser rebuilds a user from storage with an existing hash.
func RestoreUser(id kernel.UUID, email, name string, role Role, passwordHash []byte) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = append([]byte(nil), passwordHash...)

	return u, nil
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) PasswordHash() []byte { return append([]byte(nil), u.passwordHash...) }

// CheckPassword returns ErrInvalidCredentials when password does not match.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// NormalizeEmail is applied to every email before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, MaxPasswordLength)
	}
	return nil
}
