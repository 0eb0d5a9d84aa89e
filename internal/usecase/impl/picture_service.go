package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"photodeck/config"
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

const (
	defaultItemsPerPage  = 10
	defaultMaxFileSize   = 5 << 20
	fileTooLargeMessage  = "File size is too large."
	fileTypeMessage      = "File type is invalid."
	pictureFailedMessage = "Failed to add a picture."
)

var defaultAllowedFileTypes = []string{".jpg", ".jpeg", ".png"}

// pictureService implements the PictureUsecase interface.
type pictureService struct {
	pictureRepo      repository.PictureRepository
	userRepo         repository.UserRepository
	store            service.PictureStore
	maxFileSize      int64
	allowedFileTypes []string
	logger           *slog.Logger
}

// PictureServiceParams holds dependencies for pictureService, injected by Fx.
type PictureServiceParams struct {
	fx.In

	PictureRepo repository.PictureRepository
	UserRepo    repository.UserRepository
	Store       service.PictureStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPictureService is the constructor for pictureService.
func NewPictureService(params PictureServiceParams) usecase.PictureUsecase {
	maxFileSize := int64(defaultMaxFileSize)
	allowedFileTypes := defaultAllowedFileTypes
	if params.Config != nil && params.Config.Image != nil {
		if params.Config.Image.MaxFileSizeBytes > 0 {
			maxFileSize = params.Config.Image.MaxFileSizeBytes
		}
		if len(params.Config.Image.AllowedFileTypes) > 0 {
			allowedFileTypes = params.Config.Image.AllowedFileTypes
		}
	}

	return &pictureService{
		pictureRepo:      params.PictureRepo,
		userRepo:         params.UserRepo,
		store:            params.Store,
		maxFileSize:      maxFileSize,
		allowedFileTypes: allowedFileTypes,
		logger:           params.Logger,
	}
}

func (srv *pictureService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns one page of the filtered, sorted picture collection.
// Out-of-range pagination inputs are normalized, never rejected.
func (srv *pictureService) Search(ctx context.Context, input *usecase.SearchPicturesInput) (*usecase.PagedPictures, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	itemsPerPage := input.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = defaultItemsPerPage
	}

	search := toPictureSearch(input)

	total, err := srv.pictureRepo.Count(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pictures")
	}

	// Ceiling division; an empty filtered set has zero pages.
	pageCount := int((total + int64(itemsPerPage) - 1) / int64(itemsPerPage))

	pictures, err := srv.pictureRepo.Find(ctx, search, (page-1)*itemsPerPage, itemsPerPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pictures")
	}

	items := make([]*usecase.ShortPicture, 0, len(pictures))
	for _, picture := range pictures {
		items = append(items, toShortPicture(picture))
	}

	return &usecase.PagedPictures{
		Items:        items,
		Page:         page,
		ItemsPerPage: itemsPerPage,
		PageCount:    pageCount,
		Total:        total,
	}, nil
}

// Get returns the full projection of a single picture.
func (srv *pictureService) Get(ctx context.Context, id uuid.UUID) (*usecase.PictureDetails, error) {
	picture, err := srv.pictureRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPictureNotFound) {
		return nil, domainerrors.ErrPictureNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find picture")
	}

	return toPictureDetails(picture), nil
}

// Add stores the uploaded file and catalogs the picture record. Validation
// failures and upload conflicts come back as unsuccessful Results.
func (srv *pictureService) Add(ctx context.Context, input *usecase.AddPictureInput) (*usecase.AddPictureOutput, error) {
	if int64(len(input.Data)) > srv.maxFileSize {
		return &usecase.AddPictureOutput{
			Result: usecase.Fail(domainerrors.ErrValidationFailed.ErrorCode(), fileTooLargeMessage),
		}, nil
	}
	if !srv.isAllowedFileType(input.FileName) {
		return &usecase.AddPictureOutput{
			Result: usecase.Fail(domainerrors.ErrValidationFailed.ErrorCode(), fileTypeMessage),
		}, nil
	}

	ownerExists, err := srv.userRepo.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check picture owner")
	}
	if !ownerExists {
		return &usecase.AddPictureOutput{
			Result: usecase.FailWith(domainerrors.ErrUserNotFound),
		}, nil
	}

	storedPath, err := srv.store.Save(ctx, &service.PictureUpload{
		FileName: input.FileName,
		UserID:   input.UserID,
		Data:     input.Data,
	})
	if errors.Is(err, domainerrors.ErrFileAlreadyExists) {
		return &usecase.AddPictureOutput{
			Result: usecase.FailWith(domainerrors.ErrFileAlreadyExists),
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store picture file")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate picture id")
	}

	picture := &entity.Picture{
		ID:                    id,
		Title:                 input.Title,
		Description:           input.Description,
		PhysicalPath:          storedPath,
		Width:                 input.Width,
		Height:                input.Height,
		ISO:                   input.ISO,
		CameraModel:           input.CameraModel,
		Flash:                 input.Flash,
		DelayTimeMilliseconds: input.DelayTimeMilliseconds,
		FocusDistance:         input.FocusDistance,
		Created:               time.Now(),
		ShootingDate:          input.ShootingDate,
		UserID:                input.UserID,
	}

	err = srv.pictureRepo.Create(ctx, picture)
	if errors.Is(err, repository.ErrNothingPersisted) {
		srv.log(ctx).Error("Picture insert affected no rows", slog.Any("userID", input.UserID))

		return &usecase.AddPictureOutput{
			Result: usecase.Fail(domainerrors.ErrPersistenceFailed.ErrorCode(), pictureFailedMessage),
		}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create picture")
	}

	srv.log(ctx).Info("Picture catalogued",
		slog.Any("pictureID", picture.ID),
		slog.Any("userID", input.UserID),
		slog.String("path", storedPath))

	return &usecase.AddPictureOutput{
		Result:       usecase.OK(),
		ID:           picture.ID,
		PhysicalPath: storedPath,
	}, nil
}

func (srv *pictureService) isAllowedFileType(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, allowed := range srv.allowedFileTypes {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}

	return false
}

// --- Projection helpers ---

func toPictureSearch(input *usecase.SearchPicturesInput) *repository.PictureSearch {
	order := repository.SortDescending
	if strings.EqualFold(input.SortOrder, string(repository.SortAscending)) {
		order = repository.SortAscending
	}

	return &repository.PictureSearch{
		Title:                 input.Title,
		Description:           input.Description,
		Width:                 input.Width,
		Height:                input.Height,
		ISO:                   input.ISO,
		CameraModel:           input.CameraModel,
		Flash:                 input.Flash,
		DelayTimeMilliseconds: input.DelayTimeMilliseconds,
		FocusDistance:         input.FocusDistance,
		ShootingDateFrom:      input.ShootingDateFrom,
		ShootingDateTo:        input.ShootingDateTo,
		SortBy:                input.SortBy,
		SortOrder:             order,
	}
}

func toOwnerSummary(user *entity.User) *usecase.OwnerSummary {
	if user == nil {
		return nil
	}

	return &usecase.OwnerSummary{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

func toShortPicture(picture *entity.Picture) *usecase.ShortPicture {
	return &usecase.ShortPicture{
		ID:           picture.ID,
		Title:        picture.Title,
		Description:  picture.Description,
		PhysicalPath: picture.PhysicalPath,
		Width:        picture.Width,
		Height:       picture.Height,
		ShootingDate: picture.ShootingDate,
		Owner:        toOwnerSummary(picture.User),
	}
}

func toPictureDetails(picture *entity.Picture) *usecase.PictureDetails {
	return &usecase.PictureDetails{
		ID:                    picture.ID,
		Title:                 picture.Title,
		Description:           picture.Description,
		PhysicalPath:          picture.PhysicalPath,
		Width:                 picture.Width,
		Height:                picture.Height,
		ISO:                   picture.ISO,
		CameraModel:           picture.CameraModel,
		Flash:                 picture.Flash,
		DelayTimeMilliseconds: picture.DelayTimeMilliseconds,
		FocusDistance:         picture.FocusDistance,
		Created:               picture.Created,
		ShootingDate:          picture.ShootingDate,
		Owner:                 toOwnerSummary(picture.User),
	}
}
