package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories taken
// before Begin, or without calling Begin at all, write straight to the
// database; this is how the reconciliation job performs its independent
// per-record updates.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ApplicationRepository() ApplicationRepository
	UserRepository() UserRepository
}
