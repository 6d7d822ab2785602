package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand represents warehouse staff opening the picking
// checklist for a confirmed order.
type StartPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand creates a command to begin warehouse preparation.
func NewStartPreparationCommand(orderID kernel.UUID, by actor.Actor) (StartPreparationCommand, error) {
	cmd := StartPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
	); err != nil {
		return StartPreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order entering preparation.
func (c StartPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c StartPreparationCommand) By() actor.Actor {
	return c.by
}

func (c *StartPreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartPreparationCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
