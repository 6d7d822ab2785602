package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// basisPointsDenominator is the scale of tax rates: 10000 bps = 100%.
const basisPointsDenominator = 10000

// Money is a value object representing a currency amount in integer minor
// units (e.g. cents). Amounts are always non-negative; subtraction that would
// go below zero is a validation error rather than a negative balance.
//
// The zero value is a valid zero amount, so Money can be embedded in
// aggregates without a constructor guard. All arithmetic returns new values,
// keeping Money immutable and safe for concurrent use.
//
// Example usage:
//
//	price, _ := kernel.NewMoney(450_000)
//	lineTotal := price.MulQuantity(3)        // 1_350_000
//	tax := lineTotal.ApplyBasisPoints(1000)  // 10% rounded half-up
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two Money values.
// Returns an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("subtracting %d from %d yields a negative amount", other.amount, m.amount),
		)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MulQuantity returns the amount multiplied by a quantity.
// Returns an error if the quantity is not positive.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// ApplyBasisPoints returns the amount scaled by a rate expressed in basis
// points (10000 bps = 100%), rounded half-up to the minor unit.
func (m Money) ApplyBasisPoints(bps int) Money {
	if bps <= 0 {
		return Money{}
	}
	scaled := m.amount*int64(bps) + basisPointsDenominator/2
	return Money{amount: scaled / basisPointsDenominator}
}

// String returns the amount in minor units as a decimal string.
// Formatting into a display currency is the presentation layer's concern.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
