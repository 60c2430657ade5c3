package ports

import "errors"

// ErrEmailTaken is returned by UserRepository.Add for a duplicate email.
var ErrEmailTaken = errors.New("email is already registered")
