package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrTaxRateIsInvalid      = errors.New("tax rate must be between 0 and 10000 basis points")
)

// CreateOrderItem names a catalog product and the quantity ordered. Prices
// are resolved from the catalog when the command is handled, never taken
// from the caller.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a customer's request to open a new draft
// order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    orderID, customer, customerInfo, items,
//	    order.PaymentBankTransfer, address, 1000, discount, shipping)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	by            actor.Actor
	customer      order.CustomerInfo
	items         []CreateOrderItem
	paymentMethod order.PaymentMethod
	address       order.ShippingAddress
	taxRateBps    int
	discount      kernel.Money
	shippingCost  kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a draft order. Validates
// identifiers, customer data, payment method, shipping address, item
// quantities, and the tax rate range.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	customer order.CustomerInfo,
	items []CreateOrderItem,
	paymentMethod order.PaymentMethod,
	address order.ShippingAddress,
	taxRateBps int,
	discount kernel.Money,
	shippingCost kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		discount:     discount,
		shippingCost: shippingCost,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setAddress(address),
		cmd.setTaxRateBps(taxRateBps),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c CreateOrderCommand) By() actor.Actor {
	return c.by
}

// Customer returns the buyer's contact details.
func (c CreateOrderCommand) Customer() order.CustomerInfo {
	return c.customer
}

// Items returns the requested products and quantities.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Address returns the shipping address.
func (c CreateOrderCommand) Address() order.ShippingAddress {
	return c.address
}

// TaxRateBps returns the tax rate in basis points.
func (c CreateOrderCommand) TaxRateBps() int {
	return c.taxRateBps
}

// Discount returns the order level discount.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// ShippingCost returns the shipping cost.
func (c CreateOrderCommand) ShippingCost() kernel.Money {
	return c.shippingCost
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setTaxRateBps(taxRateBps int) error {
	if taxRateBps < 0 || taxRateBps > 10000 {
		return ErrTaxRateIsInvalid
	}

	c.taxRateBps = taxRateBps
	return nil
}
