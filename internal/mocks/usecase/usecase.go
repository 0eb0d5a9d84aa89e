// Package usecase provides hand-written testify mocks for the usecase
// interfaces, used by handler tests.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	appusecase "photodeck/internal/usecase"
)

// UserUsecase is a mock implementation of usecase.UserUsecase.
type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) CreateUser(ctx context.Context, input *appusecase.CreateUserInput) (appusecase.Result, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(appusecase.Result), args.Error(1)
}

func (m *UserUsecase) SignIn(ctx context.Context, input *appusecase.SignInInput) (*appusecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.SignInOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

// PictureUsecase is a mock implementation of usecase.PictureUsecase.
type PictureUsecase struct {
	mock.Mock
}

func (m *PictureUsecase) Search(ctx context.Context, input *appusecase.SearchPicturesInput) (*appusecase.PagedPictures, error) {
	args := m.Called(ctx, input)
	if page, ok := args.Get(0).(*appusecase.PagedPictures); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PictureUsecase) Get(ctx context.Context, id uuid.UUID) (*appusecase.PictureDetails, error) {
	args := m.Called(ctx, id)
	if details, ok := args.Get(0).(*appusecase.PictureDetails); ok {
		return details, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *PictureUsecase) Add(ctx context.Context, input *appusecase.AddPictureInput) (*appusecase.AddPictureOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.AddPictureOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}
