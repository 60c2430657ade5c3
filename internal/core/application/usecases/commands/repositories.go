// Package commands contains business operations that modify system state.
// Each command is validated at construction; each handler decides whether
// its repository calls share a transaction.
package commands

import (
	"context"

	"visadesk/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RetirementUoW deliberately has no transaction control: every
	// application and order update of the reconciliation is committed on
	// its own.
	RetirementUoW interface {
		OrderRepoFactory
		ApplicationRepoFactory
	}

	RetirementUoWFactory interface {
		Create() RetirementUoW
	}

	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// DocumentUoW reads the owning order to check access and writes the
	// document row.
	DocumentUoW interface {
		TxManager
		OrderRepoFactory
		ApplicationRepoFactory
	}

	DocumentUoWFactory interface {
		Create() DocumentUoW
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
