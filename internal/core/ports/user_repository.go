package ports

import (
	"context"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add returns ErrEmailTaken when another user has the same email.
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
