// Package storage persists uploaded picture files on the local filesystem.
package storage

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"photodeck/config"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/service"
)

// localPictureStore writes uploads under a date-partitioned directory tree:
// <root>/<year>/<month>/<day>/<uuidv7><ext>. The returned path starts at the
// root directory name so it can be served relative to the image root.
type localPictureStore struct {
	root   string
	logger *slog.Logger
}

// NewLocalPictureStore is the constructor for localPictureStore.
func NewLocalPictureStore(cfg *config.Config, logger *slog.Logger) service.PictureStore {
	root := "img"
	if cfg.Image != nil && cfg.Image.StoragePath != "" {
		root = cfg.Image.StoragePath
	}

	return &localPictureStore{root: root, logger: logger}
}

// Save writes the upload to a fresh, collision-resistant file name.
// An already existing target file is a hard failure, never an overwrite.
func (s *localPictureStore) Save(ctx context.Context, upload *service.PictureUpload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	s.logger.Info("Uploading picture file",
		slog.String("fileName", upload.FileName),
		slog.Any("userID", upload.UserID))

	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate file name")
	}

	today := time.Now()
	datePath := filepath.Join(
		strconv.Itoa(today.Year()),
		strconv.Itoa(int(today.Month())),
		strconv.Itoa(today.Day()),
	)
	fileName := id.String() + filepath.Ext(upload.FileName)

	directory := filepath.Join(s.root, datePath)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create picture directory")
	}

	target := filepath.Join(directory, fileName)
	if err := s.writeIfAbsent(target, upload.Data); err != nil {
		return "", err
	}

	s.logger.Info("Uploaded picture file",
		slog.String("path", target),
		slog.Any("userID", upload.UserID))

	// Stored paths always use forward slashes and start at the root dir name.
	return path.Join(filepath.Base(s.root), filepath.ToSlash(datePath), fileName), nil
}

// writeIfAbsent refuses to touch a target file that already exists.
func (s *localPictureStore) writeIfAbsent(target string, data []byte) error {
	if _, err := os.Stat(target); err == nil {
		s.logger.Warn("Picture file already exists", slog.String("path", target))

		return domainerrors.ErrFileAlreadyExists
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to stat picture file")
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write picture file")
	}

	return nil
}
