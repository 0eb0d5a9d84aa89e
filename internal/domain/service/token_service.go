package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, time-bounded session tokens.
// Issuance is stateless: nothing is persisted, the token itself is the session.
type TokenService interface {
	// Generate creates a signed token carrying the user id as subject and the
	// role name, expiring after the configured duration.
	Generate(userID uuid.UUID, role string) (string, error)

	// Validate checks signature, issuer, audience and expiry, returning the
	// parsed claims only when all of them hold.
	Validate(tokenString string) (*Claims, error)
}
