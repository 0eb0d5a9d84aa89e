package repository

import (
	"context"
	"errors"
)

// ErrRoleNotFound is returned when a role name cannot be resolved.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository resolves role names to their identifiers.
type RoleRepository interface {
	// FindIDByName returns the id of the role with the given name,
	// or ErrRoleNotFound.
	FindIDByName(ctx context.Context, name string) (int, error)
}
