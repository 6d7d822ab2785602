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
	ErrDispatchOrderCommandIsNotConstructed = errors.New(
		"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
	)
	ErrTrackingNumberIsRequired = fmt.Errorf("%w: tracking number", errs.ErrValueIsRequired)
)

// DispatchOrderCommand represents warehouse staff handing a prepared order
// to the carrier under a tracking number.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	by             actor.Actor
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewDispatchOrderCommand creates a dispatch command. The tracking number is
// mandatory.
func NewDispatchOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	trackingNumber string,
) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being dispatched.
func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c DispatchOrderCommand) By() actor.Actor {
	return c.by
}

// TrackingNumber returns the carrier tracking number.
func (c DispatchOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *DispatchOrderCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
