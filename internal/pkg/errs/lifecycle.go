package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order lifecycle taxonomy. Every failure an order
// command can produce unwraps to one of these (or to the generic sentinels in
// errs.go), so transport layers can map errors to responses without string
// matching.
var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrForbidden           = errors.New("forbidden")
	ErrConflict            = errors.New("concurrent update conflict")
	ErrIncompleteChecklist = errors.New("preparation checklist is incomplete")
)

// InvalidTransitionError reports a command whose source state does not match
// the order's current status. Carries both sides so the caller can explain
// the failure without re-reading the order.
type InvalidTransitionError struct {
	Command       string
	CurrentStatus string
	Cause         error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// command attempted against the given current status.
func NewInvalidTransitionError(command, currentStatus string) *InvalidTransitionError {
	return &InvalidTransitionError{Command: command, CurrentStatus: currentStatus}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is not allowed from status %s (cause: %s)",
			ErrInvalidTransition, e.Command, e.CurrentStatus, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is not allowed from status %s",
		ErrInvalidTransition, e.Command, e.CurrentStatus))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenError reports a command issued by a role that has no edge for it
// in the transition table.
type ForbiddenError struct {
	Role          string
	Command       string
	CurrentStatus string
}

// NewForbiddenError creates a ForbiddenError for the given role, command and
// current status.
func NewForbiddenError(role, command, currentStatus string) *ForbiddenError {
	return &ForbiddenError{Role: role, Command: command, CurrentStatus: currentStatus}
}

func (e *ForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: role %s may not %s in status %s",
		ErrForbidden, e.Role, e.Command, e.CurrentStatus))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError reports a compare-and-swap write that lost to a concurrent
// command: the status read at command start no longer held at write time.
type ConflictError struct {
	OrderID        string
	ExpectedStatus string
	ActualStatus   string
}

// NewConflictError creates a ConflictError for the given order and the
// expected/actual status pair observed at write time.
func NewConflictError(orderID, expectedStatus, actualStatus string) *ConflictError {
	return &ConflictError{OrderID: orderID, ExpectedStatus: expectedStatus, ActualStatus: actualStatus}
}

func (e *ConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s was expected in status %s but is in status %s",
		ErrConflict, e.OrderID, e.ExpectedStatus, e.ActualStatus))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IncompleteChecklistError reports a preparation completion attempted while
// line items remain unverified. MissingItemIDs names every unverified item.
type IncompleteChecklistError struct {
	OrderID        string
	MissingItemIDs []string
}

// NewIncompleteChecklistError creates an IncompleteChecklistError naming the
// unverified line items.
func NewIncompleteChecklistError(orderID string, missingItemIDs []string) *IncompleteChecklistError {
	return &IncompleteChecklistError{OrderID: orderID, MissingItemIDs: missingItemIDs}
}

func (e *IncompleteChecklistError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s has unverified items: %s",
		ErrIncompleteChecklist, e.OrderID, strings.Join(e.MissingItemIDs, ", ")))
}

func (e *IncompleteChecklistError) Unwrap() error {
	return ErrIncompleteChecklist
}
