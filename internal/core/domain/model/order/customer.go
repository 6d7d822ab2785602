package order

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

// ErrCustomerInfoIsNotConstructed is returned when a CustomerInfo instance
// was not created through the NewCustomerInfo factory method.
var ErrCustomerInfoIsNotConstructed = errors.New("CustomerInfo must be created via NewCustomerInfo constructor")

// CustomerInfo captures the creating customer's identity and billing details
// as supplied at order creation. The identity provider vouches for the id;
// the rest is commercial contact data carried for the fulfillment documents.
type CustomerInfo struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	organization string
	taxID        string

	isConstructed bool
}

// NewCustomerInfo creates validated customer details. Name and email are
// required; phone, organization and tax id are optional.
func NewCustomerInfo(id kernel.UUID, name, email, phone, organization, taxID string) (CustomerInfo, error) {
	if err := id.Validate(); err != nil {
		return CustomerInfo{}, err
	}
	if name == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer name")
	}
	if email == "" {
		return CustomerInfo{}, errs.NewValueIsRequiredError("customer email")
	}
	if !strings.Contains(email, "@") {
		return CustomerInfo{}, errs.NewValueIsInvalidError("customer email")
	}

	return CustomerInfo{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		organization:  organization,
		taxID:         taxID,
		isConstructed: true,
	}, nil
}

// Validate ensures the CustomerInfo was created through NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	if !c.isConstructed {
		return ErrCustomerInfoIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c CustomerInfo) ID() kernel.UUID { return c.id }

// Name returns the customer's display name.
func (c CustomerInfo) Name() string { return c.name }

// Email returns the customer's contact email.
func (c CustomerInfo) Email() string { return c.email }

// Phone returns the customer's contact phone, possibly empty.
func (c CustomerInfo) Phone() string { return c.phone }

// Organization returns the customer's organization, possibly empty.
func (c CustomerInfo) Organization() string { return c.organization }

// TaxID returns the customer's tax identifier, possibly empty.
func (c CustomerInfo) TaxID() string { return c.taxID }
