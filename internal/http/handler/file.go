package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"personacast/internal/domain/file"
	"personacast/internal/service"
	apperrors "personacast/pkg/errors"
)

type FileHandler struct {
	files *service.FileService
}

func NewFileHandler(files *service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

type FileResponse struct {
	ID        string    `json:"id"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mimeType"`
	Width     *int      `json:"width,omitempty"`
	Height    *int      `json:"height,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FaviconSyncResponse struct {
	Path string `json:"path"`
}

func (h *FileHandler) List(c echo.Context) error {
	files, err := h.files.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]FileResponse, 0, len(files))
	for i := range files {
		out = append(out, toFileResponse(&files[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Upload accepts a multipart form with a single "file" part.
func (h *FileHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apperrors.BadRequest("multipart field 'file' is required")
	}

	src, err := fh.Open()
	if err != nil {
		return apperrors.BadRequest("failed to open uploaded file")
	}
	defer src.Close()

	mimeType := fh.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	meta, err := h.files.Store(c.Request().Context(), fh.Filename, mimeType, src)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toFileResponse(meta))
}

func (h *FileHandler) Get(c echo.Context) error {
	found, err := h.files.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFileResponse(found))
}

func (h *FileHandler) Delete(c echo.Context) error {
	if err := h.files.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "file deleted")
}

func (h *FileHandler) FaviconSync(c echo.Context) error {
	path, err := h.files.FaviconSync(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, FaviconSyncResponse{Path: path})
}

func toFileResponse(m *file.Metadata) FileResponse {
	return FileResponse{
		ID:        m.ID,
		Size:      m.Size,
		MimeType:  m.MimeType,
		Width:     m.Width,
		Height:    m.Height,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
