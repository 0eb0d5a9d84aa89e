package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photodeck/config"
	"photodeck/internal/domain/entity"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/repository"
	"photodeck/internal/domain/service"
	mockrepository "photodeck/internal/mocks/repository"
	mockservice "photodeck/internal/mocks/service"
	"photodeck/internal/usecase"
)

type pictureServiceMocks struct {
	pictureRepo *mockrepository.PictureRepository
	userRepo    *mockrepository.UserRepository
	store       *mockservice.PictureStore
}

func newPictureService(t *testing.T, cfg *config.Config) (usecase.PictureUsecase, *pictureServiceMocks) {
	t.Helper()

	mocks := &pictureServiceMocks{
		pictureRepo: new(mockrepository.PictureRepository),
		userRepo:    new(mockrepository.UserRepository),
		store:       new(mockservice.PictureStore),
	}

	srv := NewPictureService(PictureServiceParams{
		PictureRepo: mocks.pictureRepo,
		UserRepo:    mocks.userRepo,
		Store:       mocks.store,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	return srv, mocks
}

func ptr[T any](v T) *T {
	return &v
}

func TestPictureService_Search_NormalizesPaging(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	mocks.pictureRepo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)
	mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, 0, 10).Return([]*entity.Picture{}, nil)

	page, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{Page: -3, ItemsPerPage: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.ItemsPerPage)
	assert.Equal(t, 0, page.PageCount)
	assert.Empty(t, page.Items)
	mocks.pictureRepo.AssertExpectations(t)
}

func TestPictureService_Search_PageCountCeiling(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		total         int64
		itemsPerPage  int
		wantPageCount int
	}{
		{name: "empty set has zero pages", total: 0, itemsPerPage: 10, wantPageCount: 0},
		{name: "exact multiple", total: 20, itemsPerPage: 10, wantPageCount: 2},
		{name: "remainder rounds up", total: 21, itemsPerPage: 10, wantPageCount: 3},
		{name: "single item", total: 1, itemsPerPage: 10, wantPageCount: 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			srv, mocks := newPictureService(t, nil)

			mocks.pictureRepo.On("Count", mock.Anything, mock.Anything).Return(testCase.total, nil)
			mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return([]*entity.Picture{}, nil)

			page, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{
				Page:         1,
				ItemsPerPage: testCase.itemsPerPage,
			})

			require.NoError(t, err)
			assert.Equal(t, testCase.wantPageCount, page.PageCount)
		})
	}
}

func TestPictureService_Search_OffsetFromPage(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	mocks.pictureRepo.On("Count", mock.Anything, mock.Anything).Return(int64(100), nil)
	mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, 40, 20).Return([]*entity.Picture{}, nil)

	page, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{Page: 3, ItemsPerPage: 20})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	mocks.pictureRepo.AssertExpectations(t)
}

func TestPictureService_Search_PassesFiltersAndSort(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	var captured *repository.PictureSearch
	mocks.pictureRepo.On("Count", mock.Anything, mock.MatchedBy(func(search *repository.PictureSearch) bool {
		captured = search

		return true
	})).Return(int64(0), nil)
	mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Picture{}, nil)

	_, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{
		Title:     ptr("mountain"),
		Width:     ptr(1920),
		SortBy:    repository.SortByTitle,
		SortOrder: "ASC",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, ptr("mountain"), captured.Title)
	assert.Equal(t, ptr(1920), captured.Width)
	assert.Equal(t, repository.SortByTitle, captured.SortBy)
	assert.Equal(t, repository.SortAscending, captured.SortOrder)
}

func TestPictureService_Search_DefaultsToDescending(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	mocks.pictureRepo.On("Count", mock.Anything, mock.MatchedBy(func(search *repository.PictureSearch) bool {
		return search.SortOrder == repository.SortDescending
	})).Return(int64(0), nil)
	mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*entity.Picture{}, nil)

	_, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{SortOrder: "sideways"})

	require.NoError(t, err)
	mocks.pictureRepo.AssertExpectations(t)
}

func TestPictureService_Search_ProjectsOwner(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	ownerID := uuid.New()
	shootingDate := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	pictures := []*entity.Picture{{
		ID:           uuid.New(),
		Title:        "Ridge at dawn",
		PhysicalPath: "img/2024/6/15/abc.jpg",
		Width:        1920,
		Height:       1080,
		ShootingDate: &shootingDate,
		UserID:       ownerID,
		User: &entity.User{
			ID:       ownerID,
			Name:     "alice",
			Email:    "alice@example.com",
			FullName: ptr("Alice Example"),
		},
	}}

	mocks.pictureRepo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)
	mocks.pictureRepo.On("Find", mock.Anything, mock.Anything, 0, 10).Return(pictures, nil)

	page, err := srv.Search(context.Background(), &usecase.SearchPicturesInput{})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	item := page.Items[0]
	assert.Equal(t, "Ridge at dawn", item.Title)
	assert.Equal(t, "img/2024/6/15/abc.jpg", item.PhysicalPath)
	require.NotNil(t, item.Owner)
	assert.Equal(t, ownerID, item.Owner.ID)
	assert.Equal(t, "alice", item.Owner.Name)
	assert.Equal(t, ptr("Alice Example"), item.Owner.FullName)
}

func TestPictureService_Get(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	pictureID := uuid.New()
	picture := &entity.Picture{
		ID:          pictureID,
		Title:       "Ridge at dawn",
		ISO:         ptr("400"),
		CameraModel: ptr("Canon EOS R5"),
		User:        &entity.User{ID: uuid.New(), Name: "alice", Email: "alice@example.com"},
	}

	mocks.pictureRepo.On("FindByID", mock.Anything, pictureID).Return(picture, nil)

	details, err := srv.Get(context.Background(), pictureID)

	require.NoError(t, err)
	assert.Equal(t, pictureID, details.ID)
	assert.Equal(t, ptr("Canon EOS R5"), details.CameraModel)
	require.NotNil(t, details.Owner)
	assert.Equal(t, "alice", details.Owner.Name)
}

func TestPictureService_Get_NotFound(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	pictureID := uuid.New()
	mocks.pictureRepo.On("FindByID", mock.Anything, pictureID).Return(nil, repository.ErrPictureNotFound)

	_, err := srv.Get(context.Background(), pictureID)

	require.ErrorIs(t, err, domainerrors.ErrPictureNotFound)
}

func TestPictureService_Add_Success(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	userID := uuid.New()
	mocks.userRepo.On("ExistsByID", mock.Anything, userID).Return(true, nil)
	mocks.store.On("Save", mock.Anything, mock.MatchedBy(func(upload *service.PictureUpload) bool {
		return upload.FileName == "ridge.jpg" && upload.UserID == userID
	})).Return("img/2024/6/15/abc.jpg", nil)
	mocks.pictureRepo.On("Create", mock.Anything, mock.MatchedBy(func(picture *entity.Picture) bool {
		return picture.Title == "Ridge at dawn" &&
			picture.PhysicalPath == "img/2024/6/15/abc.jpg" &&
			picture.UserID == userID
	})).Return(nil)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "Ridge at dawn",
		Width:    1920,
		Height:   1080,
		FileName: "ridge.jpg",
		Data:     []byte("jpeg bytes"),
		UserID:   userID,
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "img/2024/6/15/abc.jpg", output.PhysicalPath)
	assert.NotEqual(t, uuid.Nil, output.ID)
	mocks.pictureRepo.AssertExpectations(t)
}

func TestPictureService_Add_FileTooLarge(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Image: &config.ImageConfig{MaxFileSizeBytes: 4}}
	srv, mocks := newPictureService(t, cfg)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "too big",
		FileName: "big.jpg",
		Data:     []byte("12345"),
		UserID:   uuid.New(),
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"File size is too large."}, output.Errors)
	mocks.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPictureService_Add_DisallowedFileType(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "script",
		FileName: "evil.exe",
		Data:     []byte("MZ"),
		UserID:   uuid.New(),
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"File type is invalid."}, output.Errors)
	mocks.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPictureService_Add_UnknownOwner(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	userID := uuid.New()
	mocks.userRepo.On("ExistsByID", mock.Anything, userID).Return(false, nil)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "orphan",
		FileName: "a.png",
		Data:     []byte("x"),
		UserID:   userID,
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"User was not found."}, output.Errors)
}

func TestPictureService_Add_StoreConflict(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	userID := uuid.New()
	mocks.userRepo.On("ExistsByID", mock.Anything, userID).Return(true, nil)
	mocks.store.On("Save", mock.Anything, mock.Anything).Return("", domainerrors.ErrFileAlreadyExists)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "clash",
		FileName: "a.png",
		Data:     []byte("x"),
		UserID:   userID,
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"A file already exists."}, output.Errors)
	mocks.pictureRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPictureService_Add_NothingPersisted(t *testing.T) {
	t.Parallel()

	srv, mocks := newPictureService(t, nil)

	userID := uuid.New()
	mocks.userRepo.On("ExistsByID", mock.Anything, userID).Return(true, nil)
	mocks.store.On("Save", mock.Anything, mock.Anything).Return("img/2024/6/15/abc.png", nil)
	mocks.pictureRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrNothingPersisted)

	output, err := srv.Add(context.Background(), &usecase.AddPictureInput{
		Title:    "ghost",
		FileName: "a.png",
		Data:     []byte("x"),
		UserID:   userID,
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, []string{"Failed to add a picture."}, output.Errors)
}
