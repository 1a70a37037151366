package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personacast/internal/domain/variable"
	apperrors "personacast/pkg/errors"
)

func newFileFixture(t *testing.T) (*FileService, *fakeVariableRepo, string) {
	t.Helper()

	dir := t.TempDir()
	variables := newFakeVariableRepo()
	svc := NewFileService(newFakeFileRepo(), variables, filepath.Join(dir, "uploads"), filepath.Join(dir, "public"), "http://localhost:8080/")
	return svc, variables, dir
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestFileService_Store_Image(t *testing.T) {
	svc, _, _ := newFileFixture(t)

	meta, err := svc.Store(context.Background(), "cover.png", "image/png", bytes.NewReader(pngBytes(t, 64, 48)))
	require.NoError(t, err)

	assert.Equal(t, "image/png", meta.MimeType)
	require.NotNil(t, meta.Width)
	require.NotNil(t, meta.Height)
	assert.Equal(t, 64, *meta.Width)
	assert.Equal(t, 48, *meta.Height)
	assert.True(t, strings.HasPrefix(meta.URL, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(meta.Path, ".png"))

	// Bytes landed on disk.
	_, err = os.Stat(meta.Path)
	assert.NoError(t, err)
}

func TestFileService_Store_NonImageHasNoDimensions(t *testing.T) {
	svc, _, _ := newFileFixture(t)

	meta, err := svc.Store(context.Background(), "notes.txt", "text/plain", strings.NewReader("hello"))
	require.NoError(t, err)

	assert.Nil(t, meta.Width)
	assert.Nil(t, meta.Height)
	assert.Equal(t, int64(5), meta.Size)
}

func TestFileService_Store_RejectsEmptyUpload(t *testing.T) {
	svc, _, _ := newFileFixture(t)

	_, err := svc.Store(context.Background(), "empty.bin", "application/octet-stream", strings.NewReader(""))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestFileService_Delete_RemovesRowAndBytes(t *testing.T) {
	svc, _, _ := newFileFixture(t)
	ctx := context.Background()

	meta, err := svc.Store(ctx, "cover.png", "image/png", bytes.NewReader(pngBytes(t, 8, 8)))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, meta.ID))

	_, err = svc.GetByID(ctx, meta.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = os.Stat(meta.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileService_FaviconSync(t *testing.T) {
	svc, variables, dir := newFileFixture(t)
	ctx := context.Background()

	meta, err := svc.Store(ctx, "icon.png", "image/png", bytes.NewReader(pngBytes(t, 16, 16)))
	require.NoError(t, err)

	_, err = variables.Create(ctx, variable.CreateVariableInput{Name: variable.NameFaviconFileID, Value: meta.ID})
	require.NoError(t, err)

	target, err := svc.FaviconSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "public", "favicon.ico"), target)

	synced, err := os.ReadFile(target)
	require.NoError(t, err)
	original, err := os.ReadFile(meta.Path)
	require.NoError(t, err)
	assert.Equal(t, original, synced)
}

func TestFileService_FaviconSync_NoVariable(t *testing.T) {
	svc, _, _ := newFileFixture(t)

	_, err := svc.FaviconSync(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
