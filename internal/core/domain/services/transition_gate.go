package services

import (
	"orderflow/internal/core/domain/model/actor"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// TransitionGate is a domain service answering one question for every
// command: may this role perform this command against an order in this
// status? It is a pure decision function over a declarative table mirroring
// the lifecycle state machine; it performs no side effects and touches no
// storage.
//
// Denials are typed: a role with no edge for the command at all is Forbidden,
// while a matching role attempting the command from the wrong source state is
// an invalid transition. The Root role is deliberately absent from the table;
// it bypasses visibility restrictions on the query side only and never gains
// transition shortcuts.
//
// Example usage:
//
//	gate := services.NewTransitionGate()
//	if err := gate.Authorize(actor.RoleVendor, order.CommandVendorApprove, o.Status()); err != nil {
//	    return err // Forbidden or InvalidTransition
//	}
type TransitionGate struct{}

// NewTransitionGate creates a new TransitionGate instance.
func NewTransitionGate() TransitionGate {
	return TransitionGate{}
}

// tableEntry couples a command's required role with its permitted source
// states. Commands without a status change (checklist and draft mutations)
// appear too, so authorization is uniform across all operations.
type tableEntry struct {
	role    actor.Role
	sources []order.Status
}

func transitionTable() map[order.Command]tableEntry {
	return map[order.Command]tableEntry{
		order.CommandSubmit: {
			role:    actor.RoleCustomer,
			sources: []order.Status{order.Draft},
		},
		order.CommandCancel: {
			role: actor.RoleCustomer,
			sources: []order.Status{
				order.Draft,
				order.PendingVendorReview,
				order.VendorApproved,
				order.PendingAdminReview,
				order.AdminApproved,
				order.Confirmed,
			},
		},
		order.CommandConfirmDelivery: {
			role:    actor.RoleCustomer,
			sources: []order.Status{order.Shipped},
		},
		order.CommandModifyItems: {
			role:    actor.RoleCustomer,
			sources: []order.Status{order.Draft},
		},
		order.CommandVendorApprove: {
			role:    actor.RoleVendor,
			sources: []order.Status{order.PendingVendorReview},
		},
		order.CommandVendorReject: {
			role:    actor.RoleVendor,
			sources: []order.Status{order.PendingVendorReview},
		},
		order.CommandAdminApprove: {
			role:    actor.RoleAdmin,
			sources: []order.Status{order.PendingAdminReview},
		},
		order.CommandAdminReject: {
			role:    actor.RoleAdmin,
			sources: []order.Status{order.PendingAdminReview},
		},
		order.CommandModifyTerms: {
			role:    actor.RoleAdmin,
			sources: []order.Status{order.PendingAdminReview},
		},
		order.CommandStartPreparation: {
			role:    actor.RoleWarehouse,
			sources: []order.Status{order.Confirmed},
		},
		order.CommandVerifyItem: {
			role:    actor.RoleWarehouse,
			sources: []order.Status{order.Preparing},
		},
		order.CommandCompletePreparation: {
			role:    actor.RoleWarehouse,
			sources: []order.Status{order.Preparing},
		},
		order.CommandDispatch: {
			role:    actor.RoleWarehouse,
			sources: []order.Status{order.ReadyToShip},
		},
	}
}

// Authorize decides whether the role may perform the command against an
// order currently in the given status.
//
// Returns:
//   - nil when the command is permitted
//   - a ForbiddenError when the role has no edge for the command
//   - an InvalidTransitionError when the role matches but the current status
//     is not a permitted source state for the command
func (g TransitionGate) Authorize(role actor.Role, cmd order.Command, current order.Status) error {
	entry, ok := transitionTable()[cmd]
	if !ok || entry.role != role {
		return errs.NewForbiddenError(role.String(), cmd.String(), current.String())
	}

	for _, source := range entry.sources {
		if current == source {
			return nil
		}
	}

	return errs.NewInvalidTransitionError(cmd.String(), current.String())
}
