package service

import (
	"context"

	"github.com/google/uuid"
)

// PictureUpload is the raw file handed to the store.
type PictureUpload struct {
	FileName string // Original client file name, used only for its extension.
	UserID   uuid.UUID
	Data     []byte
}

// PictureStore writes uploaded picture files. Implementations must never
// overwrite an existing file; a name collision is a failure, not a retry.
type PictureStore interface {
	// Save writes the upload under a collision-resistant, date-partitioned
	// name and returns the stored path relative to the image root.
	Save(ctx context.Context, upload *PictureUpload) (string, error)
}
