package order

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// maxTaxRateBps caps the configurable tax rate at 100%.
const maxTaxRateBps = 10000

// Totals holds the four derived financial amounts of an order. Instances are
// always the output of CalculateTotals; the engine never accepts totals as
// caller input.
type Totals struct {
	Subtotal     kernel.Money
	Tax          kernel.Money
	Discount     kernel.Money
	ShippingCost kernel.Money
	Total        kernel.Money
}

// CalculateTotals is the financial aggregator: a pure function recomputing
// the derived amounts from the line items and commercial terms.
//
//	subtotal = Σ line.subtotal
//	tax      = roundHalfUp(subtotal × taxRateBps / 10000)
//	total    = subtotal + tax − discount + shippingCost
//
// The tax rate is expressed in basis points and varies per order-origin
// workflow (e.g. 1000 for retail, 1900 for wholesale). A discount exceeding
// subtotal + tax + shippingCost is rejected: totals are never negative.
func CalculateTotals(
	items []LineItem,
	taxRateBps int,
	discount kernel.Money,
	shippingCost kernel.Money,
) (Totals, error) {
	if taxRateBps < 0 || taxRateBps > maxTaxRateBps {
		return Totals{}, errs.NewValueIsOutOfRangeError("tax rate", taxRateBps, 0, maxTaxRateBps)
	}

	var subtotal kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	tax := subtotal.ApplyBasisPoints(taxRateBps)

	total, err := subtotal.Add(tax).Add(shippingCost).Sub(discount)
	if err != nil {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause("discount", err)
	}

	return Totals{
		Subtotal:     subtotal,
		Tax:          tax,
		Discount:     discount,
		ShippingCost: shippingCost,
		Total:        total,
	}, nil
}
