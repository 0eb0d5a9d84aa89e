package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"photodeck/internal/domain/entity"
	"photodeck/internal/domain/repository"
)

// PictureRepository is a mock implementation of repository.PictureRepository.
type PictureRepository struct {
	mock.Mock
}

func (m *PictureRepository) Create(ctx context.Context, picture *entity.Picture) error {
	args := m.Called(ctx, picture)

	return args.Error(0)
}

func (m *PictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Picture, error) {
	args := m.Called(ctx, id)
	if picture, ok := args.Get(0).(*entity.Picture); ok {
		return picture, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PictureRepository) Count(ctx context.Context, search *repository.PictureSearch) (int64, error) {
	args := m.Called(ctx, search)

	return args.Get(0).(int64), args.Error(1)
}

func (m *PictureRepository) Find(ctx context.Context, search *repository.PictureSearch, offset, limit int) ([]*entity.Picture, error) {
	args := m.Called(ctx, search, offset, limit)
	if pictures, ok := args.Get(0).([]*entity.Picture); ok {
		return pictures, args.Error(1)
	}

	return nil, args.Error(1)
}
