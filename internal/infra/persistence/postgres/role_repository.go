package postgres

import (
	"context"

	"photodeck/internal/domain/repository"
	"photodeck/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindIDByName resolves a role name to its primary key.
func (repo *roleRepository) FindIDByName(ctx context.Context, name string) (int, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrRoleNotFound
		}

		return 0, errors.Wrap(err, "failed to find role by name")
	}

	return roleM.ID, nil
}
