package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// RoleRepository is a mock implementation of repository.RoleRepository.
type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) FindIDByName(ctx context.Context, name string) (int, error) {
	args := m.Called(ctx, name)

	return args.Int(0), args.Error(1)
}
