// Package user describes who is calling the canteen core. Authentication
// happens outside the core; callers hand over an already established
// Principal.
package user

import (
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
)

// ID is the identifier assigned to a user by the authentication provider.
type ID string

// Role decides what a principal may see and do.
type Role int

const (
	UnknownRole Role = iota
	Admin
	Staff
	Student
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		Admin:       "admin",
		Staff:       "staff",
		Student:     "student",
	}
}

// ParseRole accepts "admin", "staff" or "student" in any case.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not one of admin, staff, student", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

func (r Role) Validate() error {
	if r != Admin && r != Staff && r != Student {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID   ID
	Role Role
}

// CanManageOrders reports whether the principal may change order status,
// maintain the menu and read reports. Only staff and admins can.
func (p Principal) CanManageOrders() bool {
	return p.Role == Admin || p.Role == Staff
}

// SeesAllOrders reports whether order history is unrestricted for the principal.
// Students only see their own orders.
func (p Principal) SeesAllOrders() bool {
	return p.CanManageOrders()
}

func (p Principal) Validate() error {
	if err := p.Role.Validate(); err != nil {
		return err
	}
	if p.Role == Student && strings.TrimSpace(string(p.ID)) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	return nil
}
