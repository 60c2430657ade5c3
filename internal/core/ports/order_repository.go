// Package ports defines the contracts between the visa-order domain and the
// infrastructure that persists it, sends mail and stores uploaded files.
package ports

import (
	"context"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its applications.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order row only. Applications are written through
	// ApplicationRepository so that each one is its own update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its applications and their documents.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStatus retrieves every order in the given status, with
	// applications, oldest travel date first.
	//
	// Example:
	//   complete, err := repo.GetAllByStatus(ctx, order.Complete)
	//   if err != nil {
	//       return fmt.Errorf("load complete orders: %w", err)
	//   }
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
