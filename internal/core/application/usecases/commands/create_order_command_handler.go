package commands

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
)

// CreateOrderCommandHandler opens a new draft order. Product names, SKUs,
// and unit prices are resolved from the catalog so callers can never price
// their own items.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	cmd, _ := NewCreateOrderCommand(orderID, customer, info, items,
//	    order.PaymentCash, address, 1000, kernel.Money{}, kernel.Money{})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order creation command. Builds line items from the
// catalog, computes totals, and persists the draft in one transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		product, err := h.catalog.GetProduct(ctx, requested.ProductID)
		if err != nil {
			return err
		}

		item, err := product.LineItem(kernel.NewUUID(), requested.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		newOrderNumber(cmd.OrderID()),
		cmd.Customer(),
		items,
		cmd.PaymentMethod(),
		cmd.Address(),
		cmd.TaxRateBps(),
		cmd.Discount(),
		cmd.ShippingCost(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// newOrderNumber derives a human readable order number from the creation
// date and the order id. Uniqueness follows from the id.
func newOrderNumber(id kernel.UUID) string {
	return fmt.Sprintf("ORD-%s-%.8s", time.Now().UTC().Format("20060102"), id.String())
}
