package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// SubmitOrderCommandHandler moves a draft order into the vendor review queue.
type SubmitOrderCommandHandler struct {
	runner transitionRunner
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the submission. Repeat submissions of an already
// submitted order succeed without effect.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandSubmit,
		func(o *order.Order) error {
			return o.Submit(cmd.By())
		})
}
