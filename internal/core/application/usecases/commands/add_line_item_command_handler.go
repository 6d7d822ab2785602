package commands

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/services"
	"orderflow/internal/core/ports"
)

// AddLineItemCommandHandler adds a catalog product to a draft order and
// recomputes totals.
type AddLineItemCommandHandler struct {
	runner  transitionRunner
	catalog ports.CatalogReader
}

// NewAddLineItemCommandHandler creates a handler for draft item additions.
func NewAddLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	gate services.TransitionGate,
	catalog ports.CatalogReader,
) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		runner:  newTransitionRunner(uowFactory, gate, nil),
		catalog: catalog,
	}
}

// Handle resolves the product from the catalog and appends it to the draft.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	item, err := product.LineItem(kernel.NewUUID(), cmd.Quantity())
	if err != nil {
		return err
	}

	return h.runner.run(ctx, cmd.OrderID(), cmd.By(), order.CommandModifyItems,
		func(o *order.Order) error {
			return o.AddItem(item)
		})
}
