package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// DispatchOrderCommandHandler moves a prepared order into Shipped and stamps
// the carrier tracking number.
type DispatchOrderCommandHandler struct {
	runner transitionRunner
}

// NewDispatchOrderCommandHandler creates a handler for dispatches.
func NewDispatchOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the dispatch. A repeated dispatch of an already shipped
// order succeeds without effect and keeps the original tracking number.
func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandDispatch,
		func(o *order.Order) error {
			return o.Dispatch(cmd.By(), cmd.TrackingNumber())
		})
}
