package queries

import (
	"errors"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches a single order. When ownerID is set, orders of other
// customers are reported as not found.
type GetOrderQuery struct {
	orderID kernel.UUID
	ownerID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, ownerID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return GetOrderQuery{}, err
		}
		id := *ownerID
		ownerID = &id
	}

	return GetOrderQuery{
		orderID: orderID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetOrderQuery) OwnerID() (kernel.UUID, bool) {
	if q.ownerID == nil {
		return kernel.UUID{}, false
	}
	return *q.ownerID, true
}
