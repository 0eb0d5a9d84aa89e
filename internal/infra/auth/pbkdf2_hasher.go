// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"photodeck/internal/domain/service"
)

const (
	saltByteSize   = 128 / 8
	hashByteSize   = 256 / 8
	iterationCount = 100_000
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2 with an HMAC-SHA-256 PRF. The same (password, salt) pair always
// derives the same hash, which is what sign-in verification relies on.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash generates a fresh 16-byte random salt and derives a 32-byte hash.
// An empty or whitespace-only password is a degenerate case: it yields empty
// salt and empty hash without error. Request validation rejects such passwords
// before they reach this layer.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	if strings.TrimSpace(password) == "" {
		return "", "", nil
	}

	salt := make([]byte, saltByteSize)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	return base64.StdEncoding.EncodeToString(salt), derive(password, salt), nil
}

// HashWithSalt re-derives the hash for password under an existing salt.
func (h *pbkdf2Hasher) HashWithSalt(password, salt string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", nil
	}

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode salt")
	}

	return derive(password, rawSalt), nil
}

// Check reports whether password re-derives to hash under salt.
func (h *pbkdf2Hasher) Check(password, salt, hash string) bool {
	derived, err := h.HashWithSalt(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

func derive(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, iterationCount, hashByteSize, sha256.New)

	return base64.StdEncoding.EncodeToString(key)
}
