package order

import (
	"errors"

	"orderflow/internal/pkg/errs"
)

// ErrShippingAddressIsNotConstructed is returned when a ShippingAddress
// instance was not created through the NewShippingAddress factory method.
var ErrShippingAddressIsNotConstructed = errors.New(
	"ShippingAddress must be created via NewShippingAddress constructor",
)

// ShippingAddress is the delivery destination for an order. Apartment and
// delivery instructions are optional; everything else is required.
type ShippingAddress struct {
	fullName     string
	line1        string
	apartment    string
	city         string
	region       string
	postalCode   string
	country      string
	phone        string
	instructions string

	isConstructed bool
}

// NewShippingAddress creates a validated shipping address.
func NewShippingAddress(
	fullName, line1, apartment, city, region, postalCode, country, phone, instructions string,
) (ShippingAddress, error) {
	required := map[string]string{
		"full name":   fullName,
		"address":     line1,
		"city":        city,
		"region":      region,
		"postal code": postalCode,
		"country":     country,
		"phone":       phone,
	}
	for param, value := range required {
		if value == "" {
			return ShippingAddress{}, errs.NewValueIsRequiredError(param)
		}
	}

	return ShippingAddress{
		fullName:      fullName,
		line1:         line1,
		apartment:     apartment,
		city:          city,
		region:        region,
		postalCode:    postalCode,
		country:       country,
		phone:         phone,
		instructions:  instructions,
		isConstructed: true,
	}, nil
}

// Validate ensures the ShippingAddress was created through NewShippingAddress.
func (s ShippingAddress) Validate() error {
	if !s.isConstructed {
		return ErrShippingAddressIsNotConstructed
	}
	return nil
}

// FullName returns the recipient's full name.
func (s ShippingAddress) FullName() string { return s.fullName }

// Line1 returns the street address line.
func (s ShippingAddress) Line1() string { return s.line1 }

// Apartment returns the apartment or unit, possibly empty.
func (s ShippingAddress) Apartment() string { return s.apartment }

// City returns the destination city.
func (s ShippingAddress) City() string { return s.city }

// Region returns the destination region or state.
func (s ShippingAddress) Region() string { return s.region }

// PostalCode returns the destination postal code.
func (s ShippingAddress) PostalCode() string { return s.postalCode }

// Country returns the destination country.
func (s ShippingAddress) Country() string { return s.country }

// Phone returns the recipient's contact phone.
func (s ShippingAddress) Phone() string { return s.phone }

// Instructions returns the delivery instructions, possibly empty.
func (s ShippingAddress) Instructions() string { return s.instructions }
