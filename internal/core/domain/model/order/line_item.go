package order

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered position referencing a catalog product. The catalog
// product identity (id, name, SKU) is opaque to the lifecycle core; only
// quantity and unit price participate in invariants. The line subtotal is
// always recomputed as quantity × unitPrice, never accepted from a caller.
type LineItem struct {
	id        kernel.UUID
	productID kernel.UUID
	name      string
	sku       string
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money

	isConstructed bool
}

// NewLineItem creates a validated LineItem. The unit price is expected to
// come from the catalog service, not from the customer's request.
func NewLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	sku string,
	quantity int,
	unitPrice kernel.Money,
) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product name")
	}

	subtotal, err := unitPrice.MulQuantity(quantity)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:            id,
		productID:     productID,
		name:          name,
		sku:           sku,
		quantity:      quantity,
		unitPrice:     unitPrice,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier within the order.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// ProductID returns the referenced catalog product id.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the catalog product name captured at order time.
func (li LineItem) Name() string {
	return li.name
}

// SKU returns the catalog product SKU captured at order time.
func (li LineItem) SKU() string {
	return li.sku
}

// Quantity returns the ordered quantity. Always positive.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the catalog unit price captured at order time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Subtotal returns quantity × unitPrice, recomputed at construction.
func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

// WithQuantity returns a copy of the line item with a new quantity and a
// recomputed subtotal. Used for draft quantity changes.
func (li LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := li.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(li.id, li.productID, li.name, li.sku, quantity, li.unitPrice)
}
