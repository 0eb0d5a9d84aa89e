// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"photodeck/config"
	"photodeck/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	key      []byte
	issuer   string
	audience string
	duration time.Duration
}

// NewJWTService is the constructor for jwtService.
// Missing signing material is a fatal configuration error: it fails here,
// at startup, never at request time.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil {
		return nil, errors.New("jwt configuration must be provided")
	}
	if strings.TrimSpace(cfg.JWT.Key) == "" ||
		strings.TrimSpace(cfg.JWT.Issuer) == "" ||
		strings.TrimSpace(cfg.JWT.Audience) == "" {
		return nil, errors.New("jwt key, issuer and audience must be provided")
	}
	if cfg.JWT.DurationInMinutes <= 0 {
		return nil, errors.New("jwt duration must be positive")
	}

	return &jwtService{
		key:      []byte(cfg.JWT.Key),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		duration: time.Duration(cfg.JWT.DurationInMinutes) * time.Minute,
	}, nil
}

// Generate creates a signed HS256 token for a given user and role.
func (s *jwtService) Generate(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),          // Subject (who the token is for)
		"typ": role,                     // Role name, used by RequireRole
		"iss": s.issuer,                 // Issuer
		"aud": s.audience,               // Audience
		"iat": now.Unix(),               // Issued At
		"exp": now.Add(s.duration).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks signature, issuer, audience and expiry, and returns the
// parsed claims. Any failed check yields an error and no claims.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.key, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected token claims type")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "subject claim missing")
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	role, _ := mapClaims["typ"].(string)

	expiry, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "expiry claim missing")
	}

	return &service.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: expiry,
		},
	}, nil
}
