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
	ErrVendorRejectOrderCommandIsNotConstructed = errors.New(
		"VendorRejectOrderCommand must be created via NewVendorRejectOrderCommand constructor",
	)
	ErrRejectionReasonIsRequired = fmt.Errorf("%w: rejection reason", errs.ErrValueIsRequired)
)

// VendorRejectOrderCommand represents the vendor's rejection of a submitted
// order. A reason is mandatory.
type VendorRejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	by      actor.Actor
	reason  string

	guard guard.ConstructorGuard
}

// NewVendorRejectOrderCommand creates a vendor rejection command.
func NewVendorRejectOrderCommand(
	orderID kernel.UUID,
	by actor.Actor,
	reason string,
) (VendorRejectOrderCommand, error) {
	cmd := VendorRejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBy(by),
		cmd.setReason(reason),
	); err != nil {
		return VendorRejectOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VendorRejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrVendorRejectOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c VendorRejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// By returns the acting party.
func (c VendorRejectOrderCommand) By() actor.Actor {
	return c.by
}

// Reason returns the mandatory rejection reason.
func (c VendorRejectOrderCommand) Reason() string {
	return c.reason
}

func (c *VendorRejectOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *VendorRejectOrderCommand) setBy(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.by = by
	return nil
}

func (c *VendorRejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
