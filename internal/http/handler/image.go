package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"personacast/internal/imaging"
	apperrors "personacast/pkg/errors"
)

const maxImageBytes = int64(20 << 20)

type ImageHandler struct {
	maxWidth int
}

func NewImageHandler(maxWidth int) *ImageHandler {
	return &ImageHandler{maxWidth: maxWidth}
}

type ThumbnailResponse struct {
	DataURI string `json:"dataUri"`
}

// Thumbnail reads raw image bytes from the request body and returns a
// downscaled JPEG as a data URI.
func (h *ImageHandler) Thumbnail(c echo.Context) error {
	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImageBytes+1))
	if err != nil {
		return apperrors.BadRequest("failed to read request body")
	}
	if int64(len(data)) > maxImageBytes {
		return apperrors.BadRequest("image exceeds maximum size")
	}
	if len(data) == 0 {
		return apperrors.BadRequest("image body is empty")
	}

	dataURI, err := imaging.Thumbnail(data, h.maxWidth)
	if err != nil {
		return apperrors.BadRequest("body is not a decodable image")
	}
	return c.JSON(http.StatusOK, ThumbnailResponse{DataURI: dataURI})
}
