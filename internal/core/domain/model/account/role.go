package account

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Role determines which operations a user may perform. The access policy maps
// each operation to a fixed set of roles; the role itself carries no behavior
// beyond identity and validation.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Administrator manages users and installers and may assign work.
	Administrator

	// Dispatcher creates and updates orders.
	Dispatcher

	// Installer executes assigned orders and reports status.
	Installer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		Administrator: "administrator",
		Dispatcher:    "dispatcher",
		Installer:     "installer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Administrator: "administrator",
		Dispatcher:    "dispatcher",
		Installer:     "installer",
	}
}

// RoleFromString parses the wire representation of a role.
// Accepted values are "administrator", "dispatcher", and "installer".
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the three defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lower-case name of the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
