package commands

import (
	"context"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new Created order and a Submitted
// application per applicant in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Destination(), cmd.TravelDate())
	if err != nil {
		return err
	}
	for _, applicant := range cmd.Applicants() {
		app, appErr := application.NewApplication(
			kernel.NewUUID(),
			aggregate.ID(),
			applicant.Name,
			applicant.PassportNumber,
		)
		if appErr != nil {
			return appErr
		}
		if err = aggregate.AddApplication(app); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
