package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents the customer adjusting the quantity
// of a line item on a draft order.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity int
	by       actor.Actor

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to adjust a line item
// quantity.
func NewChangeItemQuantityCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	quantity int,
	by actor.Actor,
) (ChangeItemQuantityCommand, error) {
	cmd := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
		cmd.setBy(by),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the draft order.
func (c ChangeItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item being adjusted.
func (c ChangeItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}

// By returns the acting party.
func (c ChangeItemQuantityCommand) By() actor.Actor {
	return c.by
}

func (c *ChangeItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *ChangeItemQuantityCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
