package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct review and fulfillment workflow.
//
// State transitions:
//
//	Draft ──> PendingVendorReview ──> VendorApproved ──> PendingAdminReview ──> AdminApproved
//	                │                                          │                     │
//	                v                                          v                     v
//	             Rejected                                   Rejected             Confirmed
//	                                                                                 │
//	                                                                                 v
//	                        Delivered <── Shipped <── ReadyToShip <── Preparing <────┘
//
//	Cancelled is reachable from every state up to and including Confirmed.
//	VendorApproved and AdminApproved are pass-through states: the engine
//	immediately chains them into the next queue state within the same
//	transaction, so a stored order never rests in them. They exist to record
//	a distinct audit stamp for the approval itself.
//
// Status is a value object that validates state membership and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Line items and commercial terms may only
	// be mutated while the order is a draft.
	Draft

	// PendingVendorReview marks an order submitted by the customer and
	// queued for the vendor's review.
	PendingVendorReview

	// VendorApproved records the vendor's approval. Pass-through: the engine
	// immediately moves the order on to PendingAdminReview.
	VendorApproved

	// PendingAdminReview marks an order queued for the administrator's
	// review. Commercial terms (discount, shipping cost) may be adjusted here.
	PendingAdminReview

	// AdminApproved records the administrator's approval. Pass-through: the
	// engine immediately moves the order on to Confirmed.
	AdminApproved

	// Confirmed marks a fully approved order awaiting warehouse preparation.
	Confirmed

	// Preparing marks an order being picked in the warehouse. The
	// preparation checklist is only active in this state.
	Preparing

	// ReadyToShip marks an order whose every line item has been verified.
	ReadyToShip

	// Shipped marks a dispatched order carrying a tracking number.
	Shipped

	// Delivered is the terminal success state, confirmed by the customer
	// or by the unattended confirmation timeout.
	Delivered

	// Rejected is a terminal state entered from either review queue.
	Rejected

	// Cancelled is a terminal state entered by the customer before
	// preparation begins.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Draft:               "Draft",
		PendingVendorReview: "PendingVendorReview",
		VendorApproved:      "VendorApproved",
		PendingAdminReview:  "PendingAdminReview",
		AdminApproved:       "AdminApproved",
		Confirmed:           "Confirmed",
		Preparing:           "Preparing",
		ReadyToShip:         "ReadyToShip",
		Shipped:             "Shipped",
		Delivered:           "Delivered",
		Rejected:            "Rejected",
		Cancelled:           "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// StatusFromString parses a stored status name back into a Status.
func StatusFromString(value string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid. Used to vet Status values
// arriving from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
// Terminal orders accept no command-originated mutation of any kind.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// IsCancellable reports whether a customer cancellation may still reach the
// order. Cancellation is cut off once preparation has begun.
func (s Status) IsCancellable() bool {
	switch s {
	case Draft, PendingVendorReview, VendorApproved, PendingAdminReview, AdminApproved, Confirmed:
		return true
	default:
		return false
	}
}
