package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"personacast/internal/domain/file"
	"personacast/internal/domain/variable"
	"personacast/internal/repository"
	apperrors "personacast/pkg/errors"
)

const (
	maxUploadBytes = int64(50 << 20)
	faviconName    = "favicon.ico"
)

type FileService struct {
	CRUD[file.Metadata, string, file.CreateMetadataInput, file.UpdateMetadataInput]
	repo      repository.FileRepository
	variables repository.VariableRepository
	uploadDir string
	publicDir string
	baseURL   string
}

func NewFileService(repo repository.FileRepository, variables repository.VariableRepository, uploadDir, publicDir, baseURL string) *FileService {
	return &FileService{
		CRUD:      NewCRUD[file.Metadata, string, file.CreateMetadataInput, file.UpdateMetadataInput](repo),
		repo:      repo,
		variables: variables,
		uploadDir: uploadDir,
		publicDir: publicDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Store writes the upload under the upload dir with a generated name,
// probes image dimensions when the bytes decode as an image, and
// persists the metadata row.
func (s *FileService) Store(ctx context.Context, fileName, mimeType string, r io.Reader) (*file.Metadata, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, apperrors.BadRequest("upload exceeds maximum size")
	}
	if len(data) == 0 {
		return nil, apperrors.BadRequest("upload is empty")
	}

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	storedPath := filepath.Join(s.uploadDir, storedName)

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	if err := os.WriteFile(storedPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	var width, height *int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = &cfg.Width, &cfg.Height
	}

	meta, err := s.repo.Create(ctx, file.CreateMetadataInput{
		Path:     storedPath,
		Size:     int64(len(data)),
		MimeType: mimeType,
		Width:    width,
		Height:   height,
		URL:      s.baseURL + "/uploads/" + storedName,
	})
	if err != nil {
		os.Remove(storedPath)
		return nil, err
	}
	return meta, nil
}

// Delete removes the metadata row first, then best-effort unlinks the
// bytes; a leaked file on disk is preferable to a dangling row.
func (s *FileService) Delete(ctx context.Context, id string) error {
	meta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	os.Remove(meta.Path)
	return nil
}

// FaviconSync copies the file referenced by the FAVICON_FILE_ID
// variable into the public dir as favicon.ico and returns the target
// path.
func (s *FileService) FaviconSync(ctx context.Context) (string, error) {
	v, err := s.variables.GetByName(ctx, variable.NameFaviconFileID)
	if err != nil {
		return "", err
	}

	meta, err := s.repo.GetByID(ctx, v.Value)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(meta.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read favicon source: %w", err)
	}

	if err := os.MkdirAll(s.publicDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create public dir: %w", err)
	}

	target := filepath.Join(s.publicDir, faviconName)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write favicon: %w", err)
	}
	return target, nil
}
