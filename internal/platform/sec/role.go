// Copyright (c) 2026 LabarinTech. All rights reserved.
// Author: matt.hansbello@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can push approved articles live and manage scheduling
	RolePublisher UserRole = "publisher"

	// Can review submissions, approve articles, and manage the taxonomy
	RoleEditor UserRole = "editor"

	// Default role: can write and edit their own articles
	RoleAuthor UserRole = "author"
)

// IsValid reports whether r is a recognised [UserRole] value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RolePublisher, RoleEditor, RoleAuthor:
		return true
	}
	return false
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RolePublisher:
		return 30
	case RoleEditor:
		return 20
	case RoleAuthor:
		return 10
	default:
		return 0
	}
}
