package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "personacast/pkg/errors"
)

func postImage(t *testing.T, h *ImageHandler, body []byte) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/image", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, h.Thumbnail(c)
}

func TestImageHandler_Thumbnail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480))))

	rec, err := postImage(t, NewImageHandler(320), buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body ThumbnailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.DataURI, "data:image/jpeg;base64,"))
}

func TestImageHandler_Thumbnail_EmptyBody(t *testing.T) {
	_, err := postImage(t, NewImageHandler(320), nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestImageHandler_Thumbnail_NotAnImage(t *testing.T) {
	_, err := postImage(t, NewImageHandler(320), []byte("definitely not an image"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
