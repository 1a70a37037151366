package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"
	jsonKeyDetails = "details"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

// respondValidationErrors returns a 400 carrying field-level detail.
func respondValidationErrors(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		jsonKeyError:   "validation failed",
		jsonKeyDetails: fields,
	})
}
