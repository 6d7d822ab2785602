package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Command names an operation an actor can request against an order. The
// transition gate keys its authorization table on it, and aggregate methods
// use it to report which edge a failed attempt was on.
type Command int

const (
	// CommandUnknown represents an invalid or undefined command.
	CommandUnknown Command = iota

	// CommandSubmit moves a draft into the vendor review queue.
	CommandSubmit

	// CommandVendorApprove records vendor approval and chains into admin review.
	CommandVendorApprove

	// CommandVendorReject terminally rejects an order in vendor review.
	CommandVendorReject

	// CommandAdminApprove records admin approval and chains into Confirmed.
	CommandAdminApprove

	// CommandAdminReject terminally rejects an order in admin review.
	CommandAdminReject

	// CommandStartPreparation begins warehouse picking on a confirmed order.
	CommandStartPreparation

	// CommandVerifyItem marks one line item as verified on the preparation checklist.
	CommandVerifyItem

	// CommandCompletePreparation closes the checklist and marks the order ready to ship.
	CommandCompletePreparation

	// CommandDispatch ships a prepared order under a tracking number.
	CommandDispatch

	// CommandConfirmDelivery records the customer's receipt of a shipped order.
	CommandConfirmDelivery

	// CommandCancel terminally cancels an order before preparation begins.
	CommandCancel

	// CommandModifyItems covers line-item add/remove/quantity changes on a draft.
	CommandModifyItems

	// CommandModifyTerms covers discount/shipping-cost adjustment during admin review.
	CommandModifyTerms
)

func getCommandStrings() map[Command]string {
	return map[Command]string{
		CommandUnknown:             "Unknown",
		CommandSubmit:              "Submit",
		CommandVendorApprove:       "VendorApprove",
		CommandVendorReject:        "VendorReject",
		CommandAdminApprove:        "AdminApprove",
		CommandAdminReject:         "AdminReject",
		CommandStartPreparation:    "StartPreparation",
		CommandVerifyItem:          "VerifyItem",
		CommandCompletePreparation: "CompletePreparation",
		CommandDispatch:            "Dispatch",
		CommandConfirmDelivery:     "ConfirmDelivery",
		CommandCancel:              "Cancel",
		CommandModifyItems:         "ModifyItems",
		CommandModifyTerms:         "ModifyTerms",
	}
}

// Validate checks that the command is one of the defined commands.
func (c Command) Validate() error {
	if c == CommandUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"command is invalid",
			fmt.Errorf("%d is not a valid command", c),
		)
	}
	if _, ok := getCommandStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"command is invalid",
			fmt.Errorf("%d is not a valid command", c),
		)
	}
	return nil
}

// String returns the command name. Implements fmt.Stringer and is safe to
// call on any Command value.
func (c Command) String() string {
	if str, ok := getCommandStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
