package queries

import (
	"errors"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
	"visadesk/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, optionally narrowed to one status and to one
// customer.
//
// Example:
//
//	query, err := NewGetOrdersQuery(order.Complete, nil)
//	views, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status     order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery builds the query. order.Unknown means any status and a
// nil customerID means any customer.
func NewGetOrdersQuery(status order.Status, customerID *kernel.UUID) (GetOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		id := *customerID
		customerID = &id
	}

	return GetOrdersQuery{
		status:     status,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Status() order.Status { return q.status }

func (q GetOrdersQuery) CustomerID() (kernel.UUID, bool) {
	if q.customerID == nil {
		return kernel.UUID{}, false
	}
	return *q.customerID, true
}
