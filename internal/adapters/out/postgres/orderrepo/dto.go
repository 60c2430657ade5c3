// Package orderrepo maps order aggregates to the orders table. Applications
// are stored through applicationrepo's DTOs.
package orderrepo

import (
	"time"

	"visadesk/internal/adapters/out/postgres/applicationrepo"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is indexed on status and travel date, the two columns the
// nightly reconciliation filters and sorts by.
type OrderDTO struct {
	ID           uuid.UUID                        `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID                        `gorm:"type:uuid;index;not null"`
	Destination  string                           `gorm:"not null"`
	TravelDate   time.Time                        `gorm:"index;not null"`
	Status       string                           `gorm:"type:varchar(16);index;not null"`
	Applications []applicationrepo.ApplicationDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	apps := aggregate.Applications()
	dtos := make([]applicationrepo.ApplicationDTO, 0, len(apps))
	for i, a := range apps {
		dtos = append(dtos, applicationrepo.FromDomain(a, i))
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Destination:  aggregate.Destination(),
		TravelDate:   aggregate.TravelDate(),
		Status:       aggregate.Status().String(),
		Applications: dtos,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	apps := make([]*application.Application, 0, len(dto.Applications))
	for _, a := range dto.Applications {
		app, appErr := applicationrepo.ToDomain(a)
		if appErr != nil {
			return nil, appErr
		}
		apps = append(apps, app)
	}

	return order.RestoreOrder(id, customerID, dto.Destination, dto.TravelDate, status, apps)
}
