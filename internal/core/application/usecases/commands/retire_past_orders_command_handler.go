package commands

import (
	"context"
	"fmt"

	"visadesk/internal/core/domain/model/order"
)

// RetirePastOrdersResult summarises one reconciliation run.
type RetirePastOrdersResult struct {
	// Checked is the number of Complete orders that were loaded.
	Checked             int
	RetiredOrders       int
	RetiredApplications int
}

// RetirePastOrdersCommandHandler moves Complete orders whose travel date has
// passed to Past.
//
// Updates are not wrapped in a transaction. For each due order every
// application is written first, one update each, then the order itself. The
// first failing read or write aborts the run and is returned unchanged in
// kind; nothing is retried. An interrupted run leaves the order Complete, so
// the next run picks it up again.
type RetirePastOrdersCommandHandler struct {
	uowFactory RetirementUoWFactory
}

func NewRetirePastOrdersCommandHandler(uowFactory RetirementUoWFactory) RetirePastOrdersCommandHandler {
	return RetirePastOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RetirePastOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd RetirePastOrdersCommand,
) (RetirePastOrdersResult, error) {
	var result RetirePastOrdersResult

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	orderRepo := uow.OrderRepository()
	applicationRepo := uow.ApplicationRepository()

	orders, err := orderRepo.GetAllByStatus(ctx, order.Complete)
	if err != nil {
		return result, fmt.Errorf("load complete orders: %w", err)
	}
	result.Checked = len(orders)

	for _, o := range orders {
		if !o.IsDueForRetirement(cmd.AsOf()) {
			continue
		}
		if err = ctx.Err(); err != nil {
			return result, err
		}

		if err = o.Retire(cmd.AsOf()); err != nil {
			return result, fmt.Errorf("retire order %s: %w", o.ID(), err)
		}

		for _, a := range o.Applications() {
			if err = applicationRepo.Update(ctx, a); err != nil {
				return result, fmt.Errorf("retire application %s of order %s: %w", a.ID(), o.ID(), err)
			}
			result.RetiredApplications++
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return result, fmt.Errorf("retire order %s: %w", o.ID(), err)
		}
		result.RetiredOrders++
	}

	return result, nil
}
