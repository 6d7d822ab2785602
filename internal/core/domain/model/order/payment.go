package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// PaymentMethod enumerates how the customer intends to settle the order.
// The lifecycle core records the method but never performs capture or
// settlement.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	PaymentBankTransfer
	PaymentCash
	PaymentCheck
	PaymentCard
	PaymentCredit30
	PaymentCredit60
	PaymentCredit90
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:      "unknown",
		PaymentBankTransfer: "bank-transfer",
		PaymentCash:         "cash",
		PaymentCheck:        "check",
		PaymentCard:         "card",
		PaymentCredit30:     "credit-30-days",
		PaymentCredit60:     "credit-60-days",
		PaymentCredit90:     "credit-90-days",
	}
}

// PaymentMethodFromString parses a payment method from its wire name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != PaymentUnknown && name == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a known payment method", s),
	)
}

// Validate checks that the payment method is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
