package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// CatalogReader resolves product identifiers into priced line item
// ingredients. Backed by the product catalog cache; returns
// ObjectNotFoundError for unknown products.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID kernel.UUID) (CatalogProduct, error)
}

// CatalogProduct is the subset of catalog data an order needs to build a
// line item.
type CatalogProduct struct {
	ID        kernel.UUID
	Name      string
	SKU       string
	UnitPrice kernel.Money
}

// LineItem builds a line item for the product at the given quantity.
func (p CatalogProduct) LineItem(id kernel.UUID, quantity int) (order.LineItem, error) {
	return order.NewLineItem(id, p.ID, p.Name, p.SKU, quantity, p.UnitPrice)
}
