package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SearchPicturesInput is a sparse search request. Nil filter fields impose no
// constraint. Page and ItemsPerPage below 1 are normalized to 1 and 10.
type SearchPicturesInput struct {
	Title                 *string
	Description           *string
	Width                 *int
	Height                *int
	ISO                   *string
	CameraModel           *string
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string
	ShootingDateFrom      *time.Time
	ShootingDateTo        *time.Time
	SortBy                string
	SortOrder             string
	Page                  int
	ItemsPerPage          int
}

// AddPictureInput defines the data required to catalog an uploaded picture.
// Data holds the raw file bytes; FileName only contributes its extension.
type AddPictureInput struct {
	Title                 string
	Description           *string
	Width                 int
	Height                int
	ISO                   *string
	CameraModel           *string
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string
	ShootingDate          *time.Time
	FileName              string
	Data                  []byte
	UserID                uuid.UUID
}

// --- Output DTOs ---

// OwnerSummary is the slice of the owning user exposed alongside pictures.
type OwnerSummary struct {
	ID       uuid.UUID
	Name     string
	Email    string
	FullName *string
}

// ShortPicture is the list projection returned by Search.
type ShortPicture struct {
	ID           uuid.UUID
	Title        string
	Description  *string
	PhysicalPath string
	Width        int
	Height       int
	ShootingDate *time.Time
	Owner        *OwnerSummary
}

// PictureDetails is the full projection returned by Get.
type PictureDetails struct {
	ID                    uuid.UUID
	Title                 string
	Description           *string
	PhysicalPath          string
	Width                 int
	Height                int
	ISO                   *string
	CameraModel           *string
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string
	Created               time.Time
	ShootingDate          *time.Time
	Owner                 *OwnerSummary
}

// PagedPictures is one page of search results. PageCount is the total number
// of pages in the filtered set; an empty set has zero pages. Requesting a page
// past the end yields empty Items, not an error.
type PagedPictures struct {
	Items        []*ShortPicture
	Page         int
	ItemsPerPage int
	PageCount    int
	Total        int64
}

// AddPictureOutput returns the catalogued picture's identity on success.
type AddPictureOutput struct {
	Result
	ID           uuid.UUID
	PhysicalPath string
}

// PictureUsecase defines the interface for picture-related business operations.
type PictureUsecase interface {
	Search(ctx context.Context, input *SearchPicturesInput) (*PagedPictures, error)
	Get(ctx context.Context, id uuid.UUID) (*PictureDetails, error)
	Add(ctx context.Context, input *AddPictureInput) (*AddPictureOutput, error)
}
