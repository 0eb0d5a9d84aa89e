// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"photodeck/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrNothingPersisted is returned when a write completes without touching any row.
var ErrNothingPersisted = errors.New("nothing persisted")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// ExistsByName reports whether a user with the given login name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindByNameOrEmail retrieves a user whose name or email exactly matches
	// the given value, with the role loaded. Returns ErrUserNotFound when absent.
	FindByNameOrEmail(ctx context.Context, value string) (*entity.User, error)

	// Create persists a new user entity. Returns ErrNothingPersisted when the
	// write reports no affected rows.
	Create(ctx context.Context, user *entity.User) error
}
