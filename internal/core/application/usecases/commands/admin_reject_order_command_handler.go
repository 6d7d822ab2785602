package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// AdminRejectOrderCommandHandler moves an order awaiting final review into
// the terminal Rejected state with the administrator's reason on record.
type AdminRejectOrderCommandHandler struct {
	runner transitionRunner
}

// NewAdminRejectOrderCommandHandler creates a handler for admin rejections.
func NewAdminRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) AdminRejectOrderCommandHandler {
	return AdminRejectOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the admin rejection.
func (h *AdminRejectOrderCommandHandler) Handle(ctx context.Context, cmd AdminRejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandAdminReject,
		func(o *order.Order) error {
			return o.AdminReject(cmd.By(), cmd.Reason())
		})
}
