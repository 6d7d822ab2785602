package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// UpdateTermsCommandHandler adjusts discount and shipping cost on an order
// awaiting final review and recomputes totals.
type UpdateTermsCommandHandler struct {
	runner transitionRunner
}

// NewUpdateTermsCommandHandler creates a handler for commercial term
// adjustments.
func NewUpdateTermsCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
) UpdateTermsCommandHandler {
	return UpdateTermsCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, nil),
	}
}

// Handle processes the adjustment.
func (h *UpdateTermsCommandHandler) Handle(ctx context.Context, cmd UpdateTermsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandModifyTerms,
		func(o *order.Order) error {
			return o.UpdateTerms(cmd.Discount(), cmd.ShippingCost())
		})
}
