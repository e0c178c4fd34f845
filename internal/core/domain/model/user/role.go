package user

import (
	"fmt"

	"wroom/internal/pkg/errs"
)

// Role represents the kind of actor a user is on the platform.
// Every authenticated request carries exactly one role, and route-level
// capability checks as well as order transition rules key off it.
//
// Roles:
//   - Customer places orders and reads their own order history.
//   - Partner (delivery courier) claims and delivers orders.
//   - Restaurant manages a menu and drives the kitchen side of the order lifecycle.
//   - Admin manages users and catalog items.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders.
	Customer

	// Partner is a delivery courier.
	Partner

	// Restaurant is a restaurant staff account tied to one restaurant.
	Restaurant

	// Admin is a platform administrator.
	Admin
)

// getRoleStrings returns a map of Role values to their wire representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "UNKNOWN",
		Customer:    "CUSTOMER",
		Partner:     "PARTNER",
		Restaurant:  "RESTAURANT",
		Admin:       "ADMIN",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer:   "CUSTOMER",
		Partner:    "PARTNER",
		Restaurant: "RESTAURANT",
		Admin:      "ADMIN",
	}
}

// RoleFromString parses a wire role value ("CUSTOMER", "PARTNER", "RESTAURANT",
// "ADMIN") into a Role. Unrecognized values are rejected before any lookup
// against the parsed role can happen.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Partner, Restaurant, Admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
// Implements fmt.Stringer; safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
