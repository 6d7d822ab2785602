package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrVendorApproveOrderCommandIsNotConstructed = errors.New(
	"VendorApproveOrderCommand must be created via NewVendorApproveOrderCommand constructor",
)

// VendorApproveOrderCommand represents the vendor's approval of a submitted
// order. Approval chains the order straight into the admin review queue.
type VendorApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewVendorApproveOrderCommand creates a vendor approval command.
// Notes are optional free text attached to the approval.
func NewVendorApproveOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	notes string,
) (VendorApproveOrderCommand, error) {
	cmd := VendorApproveOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
	); err != nil {
		return VendorApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VendorApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrVendorApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being approved.
func (c VendorApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c VendorApproveOrderCommand) By() actor.Actor {
	return c.by
}

// Notes returns optional approval notes.
func (c VendorApproveOrderCommand) Notes() string {
	return c.notes
}

func (c *VendorApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VendorApproveOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}
