package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photodeck/internal/domain/entity"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/repository"
	"photodeck/internal/errors"
	mockrepository "photodeck/internal/mocks/repository"
	mockservice "photodeck/internal/mocks/service"
	"photodeck/internal/usecase"
)

type userServiceMocks struct {
	userRepo     *mockrepository.UserRepository
	roleRepo     *mockrepository.RoleRepository
	hasher       *mockservice.PasswordHasher
	tokenService *mockservice.TokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		userRepo:     new(mockrepository.UserRepository),
		roleRepo:     new(mockrepository.RoleRepository),
		hasher:       new(mockservice.PasswordHasher),
		tokenService: new(mockservice.TokenService),
	}

	srv := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		RoleRepo:     mocks.roleRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       discardLogger(),
	})

	return srv, mocks
}

func TestUserService_CreateUser_Success(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(false, nil)
	mocks.roleRepo.On("FindIDByName", mock.Anything, entity.RoleNameUser).Return(2, nil)
	mocks.hasher.On("Hash", "s3cret").Return("c2FsdA==", "aGFzaA==", nil)
	mocks.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.Name == "alice" &&
			user.Email == "alice@example.com" &&
			user.RoleID == 2 &&
			user.Salt == "c2FsdA==" &&
			user.PasswordHash == "aGFzaA==" &&
			user.ID != uuid.Nil
	})).Return(nil)

	result, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleNameUser,
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	mocks.userRepo.AssertExpectations(t)
	mocks.roleRepo.AssertExpectations(t)
	mocks.hasher.AssertExpectations(t)
}

func TestUserService_CreateUser_NameTaken(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(true, nil)

	result, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleNameUser,
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), result.Code)
	assert.Equal(t, []string{"The user already exists."}, result.Errors)
	mocks.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_CreateUser_UnknownRole(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(false, nil)
	mocks.roleRepo.On("FindIDByName", mock.Anything, "Superuser").Return(0, repository.ErrRoleNotFound)

	result, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     "Superuser",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"The specified role does not exist."}, result.Errors)
}

func TestUserService_CreateUser_NothingPersisted(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(false, nil)
	mocks.roleRepo.On("FindIDByName", mock.Anything, entity.RoleNameUser).Return(2, nil)
	mocks.hasher.On("Hash", "s3cret").Return("c2FsdA==", "aGFzaA==", nil)
	mocks.userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrNothingPersisted)

	result, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleNameUser,
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, []string{"User has not been created. Check logs for details."}, result.Errors)
}

func TestUserService_CreateUser_LostRace(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(false, nil)
	mocks.roleRepo.On("FindIDByName", mock.Anything, entity.RoleNameUser).Return(2, nil)
	mocks.hasher.On("Hash", "s3cret").Return("c2FsdA==", "aGFzaA==", nil)
	mocks.userRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	result, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleNameUser,
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists.ErrorCode(), result.Code)
}

func TestUserService_CreateUser_RepositoryFault(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("ExistsByName", mock.Anything, "alice").Return(false, errors.New("connection refused"))

	_, err := srv.CreateUser(context.Background(), &usecase.CreateUserInput{
		UserName: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleNameUser,
		Password: "s3cret",
	})

	require.Error(t, err)
}

func TestUserService_SignIn_Success(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Name:         "alice",
		Email:        "alice@example.com",
		Role:         &entity.Role{ID: 1, Name: entity.RoleNameAdmin},
		Salt:         "c2FsdA==",
		PasswordHash: "aGFzaA==",
	}

	mocks.userRepo.On("FindByNameOrEmail", mock.Anything, "alice").Return(user, nil)
	mocks.hasher.On("Check", "s3cret", "c2FsdA==", "aGFzaA==").Return(true)
	mocks.tokenService.On("Generate", userID, entity.RoleNameAdmin).Return("signed.jwt.token", nil)

	output, err := srv.SignIn(context.Background(), &usecase.SignInInput{
		UserName: "alice",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "signed.jwt.token", output.Token)
	mocks.tokenService.AssertExpectations(t)
}

func TestUserService_SignIn_ByEmail(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Name:         "alice",
		Email:        "alice@example.com",
		Role:         &entity.Role{ID: 2, Name: entity.RoleNameUser},
		Salt:         "c2FsdA==",
		PasswordHash: "aGFzaA==",
	}

	mocks.userRepo.On("FindByNameOrEmail", mock.Anything, "alice@example.com").Return(user, nil)
	mocks.hasher.On("Check", "s3cret", "c2FsdA==", "aGFzaA==").Return(true)
	mocks.tokenService.On("Generate", userID, entity.RoleNameUser).Return("signed.jwt.token", nil)

	output, err := srv.SignIn(context.Background(), &usecase.SignInInput{
		UserName: "alice@example.com",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
}

func TestUserService_SignIn_UnknownUser(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	mocks.userRepo.On("FindByNameOrEmail", mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := srv.SignIn(context.Background(), &usecase.SignInInput{
		UserName: "ghost",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"User was not found."}, output.Errors)
	assert.Empty(t, output.Token)
}

func TestUserService_SignIn_WrongPassword(t *testing.T) {
	t.Parallel()

	srv, mocks := newUserService(t)

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "alice",
		Salt:         "c2FsdA==",
		PasswordHash: "aGFzaA==",
	}

	mocks.userRepo.On("FindByNameOrEmail", mock.Anything, "alice").Return(user, nil)
	mocks.hasher.On("Check", "wrong", "c2FsdA==", "aGFzaA==").Return(false)

	output, err := srv.SignIn(context.Background(), &usecase.SignInInput{
		UserName: "alice",
		Password: "wrong",
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"Invalid password."}, output.Errors)
	mocks.tokenService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}
