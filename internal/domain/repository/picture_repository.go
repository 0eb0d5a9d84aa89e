package repository

import (
	"context"
	"errors"
	"time"

	"photodeck/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPictureNotFound is returned when a picture id does not exist.
var ErrPictureNotFound = errors.New("picture not found")

// SortOrder selects the direction of a picture search ordering.
type SortOrder string

const (
	// SortAscending orders from smallest to largest sort key.
	SortAscending SortOrder = "asc"
	// SortDescending is the default when no direction is requested.
	SortDescending SortOrder = "desc"
)

// Recognized sort field names. Anything else falls back to SortByCreated.
const (
	SortByTitle        = "title"
	SortByCreated      = "created"
	SortByShootingDate = "shootingDate"
)

// PictureSearch is a sparse filter/sort specification over the picture
// collection. Nil fields impose no constraint; present fields each contribute
// exactly one predicate, ANDed with the rest. A present filter never matches
// rows whose stored value is NULL.
type PictureSearch struct {
	Title                 *string
	Description           *string
	Width                 *int
	Height                *int
	ISO                   *string
	CameraModel           *string
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string
	ShootingDateFrom      *time.Time // Inclusive lower bound.
	ShootingDateTo        *time.Time // Inclusive upper bound.
	SortBy                string
	SortOrder             SortOrder
}

// PictureRepository is the queryable picture data source. Search results are
// ordered according to the PictureSearch sort fields; no secondary tie-break
// key is applied, so ordering among equal sort keys is storage-defined.
type PictureRepository interface {
	// Create persists a new picture record. Returns ErrNothingPersisted when
	// the write reports no affected rows.
	Create(ctx context.Context, picture *entity.Picture) error

	// FindByID retrieves a single picture with its owner loaded,
	// or ErrPictureNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Picture, error)

	// Count returns the number of pictures matching the search filters.
	Count(ctx context.Context, search *PictureSearch) (int64, error)

	// Find returns the matching pictures with owners loaded, ordered per the
	// search sort fields, skipping offset rows and returning at most limit.
	Find(ctx context.Context, search *PictureSearch, offset, limit int) ([]*entity.Picture, error)
}
