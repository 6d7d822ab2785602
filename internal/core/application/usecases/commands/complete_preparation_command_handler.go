package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// CompletePreparationCommandHandler moves a fully verified order into
// ReadyToShip. An incomplete checklist fails with the missing item ids.
type CompletePreparationCommandHandler struct {
	runner transitionRunner
}

// NewCompletePreparationCommandHandler creates a handler for closing the
// preparation checklist.
func NewCompletePreparationCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) CompletePreparationCommandHandler {
	return CompletePreparationCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the checklist close.
func (h *CompletePreparationCommandHandler) Handle(ctx context.Context, cmd CompletePreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandCompletePreparation,
		func(o *order.Order) error {
			return o.CompletePreparation(cmd.By())
		})
}
