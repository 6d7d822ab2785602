package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrMarkItemVerifiedCommandIsNotConstructed = errors.New(
	"MarkItemVerifiedCommand must be created via NewMarkItemVerifiedCommand constructor",
)

// MarkItemVerifiedCommand represents warehouse staff ticking one line item
// off the preparation checklist.
type MarkItemVerifiedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewMarkItemVerifiedCommand creates a command to mark a line item verified.
func NewMarkItemVerifiedCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	by actor.Actor,
) (MarkItemVerifiedCommand, error) {
	cmd := MarkItemVerifiedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setBy(by),
	); err != nil {
		return MarkItemVerifiedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemVerifiedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemVerifiedCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under preparation.
func (c MarkItemVerifiedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item being verified.
func (c MarkItemVerifiedCommand) ItemID() kernel.UUID {
	return c.itemID
}

// By returns the acting party.
func (c MarkItemVerifiedCommand) By() actor.Actor {
	return c.by
}

func (c *MarkItemVerifiedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MarkItemVerifiedCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *MarkItemVerifiedCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
