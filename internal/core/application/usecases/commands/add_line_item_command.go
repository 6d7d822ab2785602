package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrAddLineItemCommandIsNotConstructed = errors.New(
	"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
)

// AddLineItemCommand represents the customer adding a product to a draft
// order.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int
	by        actor.Actor

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a catalog product to a
// draft order.
func NewAddLineItemCommand(
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	by actor.Actor,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
		cmd.setBy(by),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft order.
func (c AddLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the catalog product being added.
func (c AddLineItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the ordered quantity.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

// By returns the acting party.
func (c AddLineItemCommand) By() actor.Actor {
	return c.by
}

func (c *AddLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddLineItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddLineItemCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
