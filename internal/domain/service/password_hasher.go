// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies salted password hashes. Both salt and
// hash are exchanged as base64 text so they can be stored in plain columns.
//
// The hash is a deterministic keyed derivation of (password, salt): for a
// fixed pair the output never changes, which is what makes verification work.
type PasswordHasher interface {
	// Hash generates a fresh random salt and derives the hash for password.
	// An empty or all-whitespace password yields empty salt and empty hash;
	// callers are expected to have rejected such passwords upstream.
	Hash(password string) (salt string, hash string, err error)

	// HashWithSalt re-derives the hash for password using an existing
	// base64-encoded salt. This is the verification path.
	HashWithSalt(password, salt string) (string, error)

	// Check reports whether password re-derives to hash under salt.
	Check(password, salt, hash string) bool
}
