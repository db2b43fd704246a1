package account

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Role distinguishes the two kinds of actors in the system. It is assigned at
// creation and never changes afterwards.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin is a back-office actor: creates accounts and parcels,
	// toggles activation. Admins never carry parcels.
	RoleAdmin

	// RoleTransporter is a delivery actor with a specialty and an
	// availability status.
	RoleTransporter
)

func roleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		RoleAdmin:       "ADMIN",
		RoleTransporter: "TRANSPORTER",
	}
}

// ParseRole converts the canonical wire form ("ADMIN", "TRANSPORTER") to a Role.
func ParseRole(s string) (Role, error) {
	for r, str := range roleStrings() {
		if r != RoleUnknown && str == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleAdmin && r != RoleTransporter {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical wire form of the role.
func (r Role) String() string {
	if s, ok := roleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// IsAdmin reports whether the role is ADMIN.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsTransporter reports whether the role is TRANSPORTER.
func (r Role) IsTransporter() bool {
	return r == RoleTransporter
}
