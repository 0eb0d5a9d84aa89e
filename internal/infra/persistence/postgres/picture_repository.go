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

// pictureRepository implements the domain.PictureRepository interface using GORM.
type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository is the constructor for pictureRepository.
func NewPictureRepository(db *gorm.DB) repository.PictureRepository {
	return &pictureRepository{db: db}
}

// Create persists a new picture record.
func (repo *pictureRepository) Create(ctx context.Context, picture *entity.Picture) error {
	pictureM := fromPictureDomain(picture)

	result := repo.db.WithContext(ctx).Create(pictureM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create picture")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNothingPersisted
	}

	picture.ID = pictureM.ID
	picture.Created = pictureM.Created

	return nil
}

// FindByID retrieves a single picture with its owner preloaded.
func (repo *pictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Picture, error) {
	var pictureM model.PictureModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&pictureM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPictureNotFound
		}

		return nil, errors.Wrap(err, "failed to find picture by id")
	}

	return toPictureDomain(&pictureM), nil
}

// Count returns the number of pictures matching the search filters.
func (repo *pictureRepository) Count(ctx context.Context, search *repository.PictureSearch) (int64, error) {
	var count int64
	query := repo.db.WithContext(ctx).Model(&model.PictureModel{})
	if err := applyFilters(query, search).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pictures")
	}

	return count, nil
}

// Find returns a page of matching pictures with owners preloaded, ordered per
// the search sort fields.
func (repo *pictureRepository) Find(ctx context.Context, search *repository.PictureSearch, offset, limit int) ([]*entity.Picture, error) {
	query := repo.db.WithContext(ctx).Model(&model.PictureModel{}).Preload("User")
	query = applyFilters(query, search)
	query = applySort(query, search)

	var pictureMs []*model.PictureModel
	if err := query.Offset(offset).Limit(limit).Find(&pictureMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pictures")
	}

	pictures := make([]*entity.Picture, 0, len(pictureMs))
	for _, pictureM := range pictureMs {
		pictures = append(pictures, toPictureDomain(pictureM))
	}

	return pictures, nil
}

// --- Mapper Functions ---

func toPictureDomain(data *model.PictureModel) *entity.Picture {
	if data == nil {
		return nil
	}

	return &entity.Picture{
		ID:                    data.ID,
		Title:                 data.Title,
		Description:           data.Description,
		PhysicalPath:          data.PhysicalPath,
		Width:                 data.Width,
		Height:                data.Height,
		ISO:                   data.ISO,
		CameraModel:           data.CameraModel,
		Flash:                 data.Flash,
		DelayTimeMilliseconds: data.DelayTimeMilliseconds,
		FocusDistance:         data.FocusDistance,
		Created:               data.Created,
		ShootingDate:          data.ShootingDate,
		UserID:                data.UserID,
		User:                  toUserDomain(data.User),
	}
}

func fromPictureDomain(data *entity.Picture) *model.PictureModel {
	if data == nil {
		return nil
	}

	return &model.PictureModel{
		ID:                    data.ID,
		Title:                 data.Title,
		Description:           data.Description,
		PhysicalPath:          data.PhysicalPath,
		Width:                 data.Width,
		Height:                data.Height,
		ISO:                   data.ISO,
		CameraModel:           data.CameraModel,
		Flash:                 data.Flash,
		DelayTimeMilliseconds: data.DelayTimeMilliseconds,
		FocusDistance:         data.FocusDistance,
		Created:               data.Created,
		ShootingDate:          data.ShootingDate,
		UserID:                data.UserID,
	}
}
