package queries

import (
	"context"

	"visadesk/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	reader orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: orderReader{db: db}}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	views, err := h.reader.read(ctx, func(db *gorm.DB) *gorm.DB {
		db = db.Where("id = ?", query.OrderID().Bytes())
		if ownerID, ok := query.OwnerID(); ok {
			db = db.Where("customer_id = ?", ownerID.Bytes())
		}
		return db
	})
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return views[0], nil
}
