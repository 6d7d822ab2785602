package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// VendorRejectOrderCommandHandler moves a submitted order into the terminal
// Rejected state with the vendor's reason on record.
type VendorRejectOrderCommandHandler struct {
	runner transitionRunner
}

// NewVendorRejectOrderCommandHandler creates a handler for vendor rejections.
func NewVendorRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	notifier ports.TransitionNotifier,
) VendorRejectOrderCommandHandler {
	return VendorRejectOrderCommandHandler{
		runner: newTransitionRunner(uowFactory, gate, notifier),
	}
}

// Handle processes the vendor rejection.
func (h *VendorRejectOrderCommandHandler) Handle(ctx context.Context, cmd VendorRejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandVendorReject,
		func(o *order.Order) error {
			return o.VendorReject(cmd.By(), cmd.Reason())
		})
}
