package entity

import (
	"time"

	"github.com/google/uuid"
)

// Picture is a catalogued photo plus its camera metadata. Nullable camera
// fields are pointers so that "not recorded" stays distinguishable from zero
// values; the search filters rely on that distinction.
type Picture struct {
	ID                    uuid.UUID
	Title                 string
	Description           *string
	PhysicalPath          string // Path of the stored file, relative to the image root.
	Width                 int
	Height                int
	ISO                   *string
	CameraModel           *string
	Flash                 *bool
	DelayTimeMilliseconds *float64
	FocusDistance         *string
	Created               time.Time  // When the record entered the catalog.
	ShootingDate          *time.Time // When the photo was taken, if known.
	UserID                uuid.UUID  // The owning user.
	User                  *User      // The owner. Nil unless the repository loaded it.
}
