package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrCompletePreparationCommandIsNotConstructed = errors.New(
	"CompletePreparationCommand must be created via NewCompletePreparationCommand constructor",
)

// CompletePreparationCommand represents warehouse staff closing the
// preparation checklist. Succeeds only once every line item is verified.
type CompletePreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewCompletePreparationCommand creates a command to close the checklist.
func NewCompletePreparationCommand(orderID kernel.UUID, by actor.Actor) (CompletePreparationCommand, error) {
	cmd := CompletePreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
	); err != nil {
		return CompletePreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePreparationCommand) Validate() error {
	return c.guard.Validate(ErrCompletePreparationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order under preparation.
func (c CompletePreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c CompletePreparationCommand) By() actor.Actor {
	return c.by
}

func (c *CompletePreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompletePreparationCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
