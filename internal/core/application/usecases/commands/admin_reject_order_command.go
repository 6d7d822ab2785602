package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrAdminRejectOrderCommandIsNotConstructed = errors.New(
	"AdminRejectOrderCommand must be created via NewAdminRejectOrderCommand constructor",
)

// AdminRejectOrderCommand represents the administrator's rejection of an
// order awaiting final review. A reason is mandatory.
type AdminRejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewAdminRejectOrderCommand creates an admin rejection command.
func NewAdminRejectOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	reason string,
) (AdminRejectOrderCommand, error) {
	cmd := AdminRejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setReason(reason),
	); err != nil {
		return AdminRejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminRejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c AdminRejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c AdminRejectOrderCommand) By() actor.Actor {
	return c.by
}

// Reason returns the mandatory rejection reason.
func (c AdminRejectOrderCommand) Reason() string {
	return c.reason
}

func (c *AdminRejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdminRejectOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *AdminRejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
