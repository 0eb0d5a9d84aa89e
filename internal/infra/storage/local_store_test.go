package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photodeck/config"
	domainerrors "photodeck/internal/domain/errors"
	"photodeck/internal/domain/service"
)

func newTestStore(t *testing.T) *localPictureStore {
	t.Helper()

	cfg := &config.Config{Image: &config.ImageConfig{StoragePath: filepath.Join(t.TempDir(), "img")}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewLocalPictureStore(cfg, logger).(*localPictureStore)
}

func TestLocalPictureStore_Save(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	stored, err := store.Save(context.Background(), &service.PictureUpload{
		FileName: "holiday.JPG",
		UserID:   uuid.New(),
		Data:     []byte("not really a jpeg"),
	})
	require.NoError(t, err)

	today := time.Now()
	wantPrefix := fmt.Sprintf("img/%d/%d/%d/", today.Year(), int(today.Month()), today.Day())
	assert.True(t, strings.HasPrefix(stored, wantPrefix), "stored path %q should start with %q", stored, wantPrefix)
	assert.True(t, strings.HasSuffix(stored, ".JPG"))

	onDisk := filepath.Join(store.root,
		strconv.Itoa(today.Year()), strconv.Itoa(int(today.Month())), strconv.Itoa(today.Day()),
		filepath.Base(stored))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("not really a jpeg"), data)
}

func TestLocalPictureStore_Save_UniqueNames(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	upload := &service.PictureUpload{FileName: "same.png", UserID: uuid.New(), Data: []byte("x")}

	first, err := store.Save(context.Background(), upload)
	require.NoError(t, err)

	second, err := store.Save(context.Background(), upload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalPictureStore_Save_ExistingFile(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	stored, err := store.Save(context.Background(), &service.PictureUpload{
		FileName: "clash.png",
		UserID:   uuid.New(),
		Data:     []byte("x"),
	})
	require.NoError(t, err)

	// Simulate a name collision by pre-creating the exact target path.
	rel := strings.TrimPrefix(stored, "img/")
	target := filepath.Join(store.root, filepath.FromSlash(rel))
	require.FileExists(t, target)

	err = store.writeIfAbsent(target, []byte("y"))
	assert.ErrorIs(t, err, domainerrors.ErrFileAlreadyExists)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data, "existing file must not be overwritten")
}

func TestLocalPictureStore_Save_CancelledContext(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, &service.PictureUpload{FileName: "a.png", UserID: uuid.New(), Data: []byte("x")})
	assert.Error(t, err)
}
