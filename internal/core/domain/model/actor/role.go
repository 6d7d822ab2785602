package actor

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Role identifies the kind of actor issuing a command. The transition table
// keys on it: a role absent from an edge's entry is denied outright.
//
// RoleRoot never unlocks transition shortcuts; it only bypasses object-level
// visibility restrictions on the query side.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the buyer who creates, submits and may cancel orders,
	// and confirms receipt of a shipped order.
	RoleCustomer

	// RoleVendor is the salesperson performing the first review of a
	// submitted order.
	RoleVendor

	// RoleAdmin is the administrator performing the second review and
	// adjusting commercial terms.
	RoleAdmin

	// RoleWarehouse is the warehouse operator who prepares, verifies and
	// dispatches confirmed orders.
	RoleWarehouse

	// RoleRoot is the superuser role used for observability and recovery.
	RoleRoot
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "Unknown",
		RoleCustomer:  "Customer",
		RoleVendor:    "Vendor",
		RoleAdmin:     "Admin",
		RoleWarehouse: "Warehouse",
		RoleRoot:      "Root",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:  "Customer",
		RoleVendor:    "Vendor",
		RoleAdmin:     "Admin",
		RoleWarehouse: "Warehouse",
		RoleRoot:      "Root",
	}
}

// RoleFromString parses a role name as supplied by the identity provider.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a known role", s),
	)
}

// Validate checks that the role is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
