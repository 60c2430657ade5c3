package queries

import (
	"context"

	"visadesk/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler returns order views sorted by travel date.
type GetOrdersQueryHandler struct {
	reader orderReader
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: orderReader{db: db}}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.read(ctx, func(db *gorm.DB) *gorm.DB {
		if query.Status() != order.Unknown {
			db = db.Where("status = ?", query.Status().String())
		}
		if customerID, ok := query.CustomerID(); ok {
			db = db.Where("customer_id = ?", customerID.Bytes())
		}
		return db
	})
}
