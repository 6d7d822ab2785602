package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrCancellationReasonIsRequired = fmt.Errorf("%w: cancellation reason", errs.ErrValueIsRequired)
)

// CancelOrderCommand represents the customer cancelling an order that has
// not yet entered warehouse preparation.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The reason is
// mandatory.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	reason string,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setReason(reason),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c CancelOrderCommand) By() actor.Actor {
	return c.by
}

// Reason returns the mandatory cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	c.reason = reason
	return nil
}
