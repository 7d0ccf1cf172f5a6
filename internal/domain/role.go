package domain

import "slices"

// Role represents a user role in the system
type Role string

const (
	// RoleAdmin can manage tenants and system settings across all modules
	RoleAdmin Role = "admin"

	// RoleManager can approve purchase orders, issue invoices and manage employees
	RoleManager Role = "manager"

	// RoleStaff has day-to-day access: tasks, orders, attendance
	RoleStaff Role = "staff"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleStaff}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	return slices.Contains(ValidRoles, Role(role))
}

// HasRole checks if a slice of roles contains a specific role
func HasRole(roles []string, role Role) bool {
	return slices.Contains(roles, string(role))
}

// HasAnyRole checks if a slice of roles contains any of the specified roles
func HasAnyRole(roles []string, requiredRoles ...Role) bool {
	for _, required := range requiredRoles {
		if HasRole(roles, required) {
			return true
		}
	}
	return false
}
