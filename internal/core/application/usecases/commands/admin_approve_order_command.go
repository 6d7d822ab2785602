package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrAdminApproveOrderCommandIsNotConstructed = errors.New(
	"AdminApproveOrderCommand must be created via NewAdminApproveOrderCommand constructor",
)

// AdminApproveOrderCommand represents the administrator's final approval.
// Approval chains the order straight into Confirmed.
type AdminApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewAdminApproveOrderCommand creates an admin approval command.
// Notes are optional free text attached to the approval.
func NewAdminApproveOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	notes string,
) (AdminApproveOrderCommand, error) {
	cmd := AdminApproveOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
	); err != nil {
		return AdminApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c AdminApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c AdminApproveOrderCommand) By() actor.Actor {
	return c.by
}

// Notes returns optional approval notes.
func (c AdminApproveOrderCommand) Notes() string {
	return c.notes
}

func (c *AdminApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdminApproveOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
