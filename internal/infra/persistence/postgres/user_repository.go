// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"photodeck/internal/domain/entity"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/repository"
	"photodeck/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// ExistsByName reports whether any user row carries the given login name.
func (repo *userRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users by name")
	}

	return count > 0, nil
}

// ExistsByID reports whether any user row carries the given id.
func (repo *userRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count users by id")
	}

	return count > 0, nil
}

// FindByNameOrEmail retrieves a single user whose name or email exactly
// matches the given value, with the role preloaded.
func (repo *userRepository) FindByNameOrEmail(ctx context.Context, value string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Role").
		Where("name = ? OR email = ?", value, value).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name or email")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).Create(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrRoleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNothingPersisted
	}

	// Propagate the generated ID back to the caller's entity.
	user.ID = userM.ID
	user.CreationDate = userM.CreationDate

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		FullName:     data.FullName,
		RoleID:       data.RoleID,
		Role:         toRoleDomain(data.Role),
		Salt:         data.Salt,
		PasswordHash: data.PasswordHash,
		CreationDate: data.CreationDate,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		FullName:     data.FullName,
		RoleID:       data.RoleID,
		Salt:         data.Salt,
		PasswordHash: data.PasswordHash,
		CreationDate: data.CreationDate,
	}
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:   data.ID,
		Name: data.Name,
	}
}
