package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// ChangeItemQuantityCommandHandler adjusts a draft line item's quantity and
// recomputes totals.
type ChangeItemQuantityCommandHandler struct {
	runner transitionRunner
}

// NewChangeItemQuantityCommandHandler creates a handler for quantity
// adjustments.
func NewChangeItemQuantityCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, nil),
	}
}

// Handle processes the adjustment.
func (h *ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandModifyItems,
		func(o *order.Order) error {
			return o.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity())
		})
}
