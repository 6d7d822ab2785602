package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateTermsCommandIsNotConstructed = errors.New(
	"UpdateTermsCommand must be created via NewUpdateTermsCommand constructor",
)

// UpdateTermsCommand represents the administrator adjusting the commercial
// terms (discount and shipping cost) of an order under final review.
type UpdateTermsCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	by           actor.Actor
	discount     kernel.Money
	shippingCost kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateTermsCommand creates a command to adjust commercial terms.
func NewUpdateTermsCommand(
	orderID kernel.UUID,
	by actor.Actor,
	discount kernel.Money,
	shippingCost kernel.Money,
) (UpdateTermsCommand, error) {
	cmd := UpdateTermsCommand{
		discount:     discount,
		shippingCost: shippingCost,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
	); err != nil {
		return UpdateTermsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTermsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTermsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under review.
func (c UpdateTermsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c UpdateTermsCommand) By() actor.Actor {
	return c.by
}

// Discount returns the new order level discount.
func (c UpdateTermsCommand) Discount() kernel.Money {
	return c.discount
}

// ShippingCost returns the new shipping cost.
func (c UpdateTermsCommand) ShippingCost() kernel.Money {
	return c.shippingCost
}

func (c *UpdateTermsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTermsCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
