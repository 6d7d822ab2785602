package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// AdminApproveOrderCommandHandler records the administrator's approval and
// confirms the order within the same transaction.
type AdminApproveOrderCommandHandler struct {
	runner transitionRunner
}

// NewAdminApproveOrderCommandHandler creates a handler for admin approvals.
func NewAdminApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) AdminApproveOrderCommandHandler {
	return AdminApproveOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the admin approval. A repeated approval of an already
// confirmed order succeeds without effect.
func (h *AdminApproveOrderCommandHandler) Handle(ctx context.Context, cmd AdminApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandAdminApprove,
		func(o *order.Order) error {
			return o.AdminApprove(cmd.By(), cmd.Notes())
		})
}
