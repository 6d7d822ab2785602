package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// ConfirmDeliveryCommandHandler closes the lifecycle by moving a shipped
// order into the terminal Delivered state.
type ConfirmDeliveryCommandHandler struct {
	runner transitionRunner
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the confirmation. A repeated confirmation succeeds
// without effect.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandConfirmDelivery,
		func(o *order.Order) error {
			return o.ConfirmDelivery(cmd.By())
		})
}
