package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// CancelOrderCommandHandler moves an order into the terminal Cancelled state.
// Cancellation is cut off once preparation has begun.
type CancelOrderCommandHandler struct {
	runner transitionRunner
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the cancellation. A repeated cancellation succeeds
// without effect.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandCancel,
		func(o *order.Order) error {
			return o.Cancel(cmd.By(), cmd.Reason())
		})
}
