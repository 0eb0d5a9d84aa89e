// Package service provides hand-written testify mocks for the domain service
// interfaces.
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domainservice "photodeck/internal/domain/service"
)

// PasswordHasher is a mock implementation of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, string, error) {
	args := m.Called(password)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *PasswordHasher) HashWithSalt(password, salt string) (string, error) {
	args := m.Called(password, salt)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, salt, hash string) bool {
	args := m.Called(password, salt, hash)

	return args.Bool(0)
}

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) Generate(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *TokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

// PictureStore is a mock implementation of service.PictureStore.
type PictureStore struct {
	mock.Mock
}

func (m *PictureStore) Save(ctx context.Context, upload *domainservice.PictureUpload) (string, error) {
	args := m.Called(ctx, upload)

	return args.String(0), args.Error(1)
}
