// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns pictures in the catalog.
// Salt and PasswordHash are base64-encoded credential material; the plaintext
// password is never stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, time-ordered (UUIDv7).
	Name         string    // The unique login name.
	Email        string    // The user's email, also accepted as a sign-in identifier.
	FullName     *string   // Optional display name.
	RoleID       int       // Foreign key to the role table.
	Role         *Role     // The resolved role. Nil unless the repository loaded it.
	Salt         string    // Base64-encoded per-user salt, generated once at registration.
	PasswordHash string    // Base64-encoded PBKDF2 hash derived from (password, salt).
	CreationDate time.Time // Timestamp of when this account was created.
}
