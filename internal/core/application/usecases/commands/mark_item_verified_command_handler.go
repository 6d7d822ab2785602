package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// MarkItemVerifiedCommandHandler records a checklist tick. Verifying an item
// twice is a no-op; verifying an item the order does not contain fails.
type MarkItemVerifiedCommandHandler struct {
	runner transitionRunner
}

// NewMarkItemVerifiedCommandHandler creates a handler for checklist ticks.
func NewMarkItemVerifiedCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) MarkItemVerifiedCommandHandler {
	return MarkItemVerifiedCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the verification tick.
func (h *MarkItemVerifiedCommandHandler) Handle(ctx context.Context, cmd MarkItemVerifiedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandVerifyItem,
		func(o *order.Order) error {
			return o.VerifyItem(cmd.By(), cmd.ItemID())
		})
}
