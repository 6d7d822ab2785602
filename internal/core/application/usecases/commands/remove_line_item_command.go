package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents the customer removing a line item from a
// draft order.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to drop a line item from a
// draft order.
func NewRemoveLineItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	by actor.Actor,
) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setBy(by),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft order.
func (c RemoveLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item being removed.
func (c RemoveLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// By returns the acting party.
func (c RemoveLineItemCommand) By() actor.Actor {
	return c.by
}

func (c *RemoveLineItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveLineItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *RemoveLineItemCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
