package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
)

// RemoveLineItemCommandHandler drops a line item from a draft order and
// recomputes totals.
type RemoveLineItemCommandHandler struct {
	runner transitionRunner
}

// NewRemoveLineItemCommandHandler creates a handler for draft item removals.
func NewRemoveLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, nil),
	}
}

// Handle processes the removal.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandModifyItems,
		func(o *order.Order) error {
			return o.RemoveItem(cmd.ItemID())
		})
}
