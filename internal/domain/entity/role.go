// Package entity contains the core business objects of the project.
package entity

// Role is a named permission level assigned to every user.
// Roles are seeded by the storage layer; the core only resolves names to ids.
type Role struct {
	ID   int
	Name string
}

// Well-known role names. Registration accepts any name the role repository
// can resolve, these constants just keep handlers and tests honest.
const (
	RoleNameAdmin = "Admin"
	RoleNameUser  = "User"
)
