// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "photodeck/internal/delivery/context"
	"photodeck/internal/domain/entity"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/repository"
	"photodeck/internal/domain/service"
	"photodeck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	RoleRepo     repository.RoleRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		roleRepo:     params.RoleRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new account. The login name must be unused and the
// requested role must exist; the password is salted and hashed before the
// record is written. Failed preconditions come back as unsuccessful Results.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (usecase.Result, error) {
	srv.log(ctx).Info("Starting user registration", slog.String("userName", input.UserName))

	exists, err := srv.userRepo.ExistsByName(ctx, input.UserName)
	if err != nil {
		return usecase.Result{}, errors.Wrap(err, "failed to check user existence")
	}
	if exists {
		srv.log(ctx).Warn("Registration rejected, name taken", slog.String("userName", input.UserName))

		return usecase.FailWith(domainerrors.ErrUserAlreadyExists), nil
	}

	roleID, err := srv.roleRepo.FindIDByName(ctx, input.Role)
	if errors.Is(err, repository.ErrRoleNotFound) {
		return usecase.FailWith(domainerrors.ErrRoleNotFound), nil
	}
	if err != nil {
		return usecase.Result{}, errors.Wrap(err, "failed to resolve role")
	}

	salt, hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return usecase.Result{}, errors.Wrap(err, "failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return usecase.Result{}, errors.Wrap(err, "failed to generate user id")
	}

	user := &entity.User{
		ID:           id,
		Name:         input.UserName,
		Email:        input.Email,
		FullName:     input.FullName,
		RoleID:       roleID,
		Salt:         salt,
		PasswordHash: hash,
		CreationDate: time.Now(),
	}

	err = srv.userRepo.Create(ctx, user)
	// The existence check above is not atomic with the insert; a concurrent
	// registration for the same name surfaces here as a unique violation.
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return usecase.FailWith(domainerrors.ErrUserAlreadyExists), nil
	}
	if errors.Is(err, repository.ErrNothingPersisted) {
		srv.log(ctx).Error("User insert affected no rows", slog.String("userName", input.UserName))

		return usecase.Fail(domainerrors.ErrPersistenceFailed.ErrorCode(),
			"User has not been created. Check logs for details."), nil
	}
	if err != nil {
		return usecase.Result{}, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID), slog.String("userName", user.Name))

	return usecase.OK(), nil
}

// SignIn authenticates by login name or email and issues a token on success.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByNameOrEmail(ctx, input.UserName)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Sign-in for unknown user", slog.String("userName", input.UserName))

		return &usecase.SignInOutput{Result: usecase.FailWith(domainerrors.ErrUserNotFound)}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in with wrong password", slog.Any("userID", user.ID))

		return &usecase.SignInOutput{Result: usecase.FailWith(domainerrors.ErrInvalidPassword)}, nil
	}

	var roleName string
	if user.Role != nil {
		roleName = user.Role.Name
	}

	token, err := srv.tokenService.Generate(user.ID, roleName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", user.ID))

	return &usecase.SignInOutput{Result: usecase.OK(), Token: token}, nil
}
