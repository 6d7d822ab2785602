package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// StartPreparationCommandHandler moves a confirmed order into Preparing and
// resets the verification checklist.
type StartPreparationCommandHandler struct {
	runner transitionRunner
}

// NewStartPreparationCommandHandler creates a handler for opening preparation.
func NewStartPreparationCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the preparation start. Repeats on an order already in
// preparation succeed without resetting the checklist again.
func (h *StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandStartPreparation,
		func(o *order.Order) error {
			return o.StartPreparation(cmd.By())
		})
}
