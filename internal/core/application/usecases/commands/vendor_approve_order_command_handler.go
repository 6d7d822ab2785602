package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// VendorApproveOrderCommandHandler records the vendor's approval and chains
// the order into admin review within the same transaction. Two transitions
// are recorded and two notifications published.
type VendorApproveOrderCommandHandler struct {
	runner transitionRunner
}

// NewVendorApproveOrderCommandHandler creates a handler for vendor approvals.
func NewVendorApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) VendorApproveOrderCommandHandler {
	return VendorApproveOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the vendor approval. A repeated approval of an order the
// vendor already approved succeeds without effect.
func (h *VendorApproveOrderCommandHandler) Handle(ctx context.Context, cmd VendorApproveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandVendorApprove,
		func(o *order.Order) error {
			return o.VendorApprove(cmd.By(), cmd.Notes())
		})
}
