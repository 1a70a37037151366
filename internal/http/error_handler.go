package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "personacast/pkg/errors"
	"personacast/pkg/logger"
)

// ErrorHandler maps sentinel errors to HTTP status codes, hides 5xx
// internals from clients and logs everything with the request id.
// Nothing escapes a handler unhandled: echo funnels every returned
// error here.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	} else {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			code = http.StatusNotFound
			message = "resource not found"
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrBadRequest):
			code = http.StatusBadRequest
			message = "bad request"
		case errors.Is(err, apperrors.ErrUnauthorized):
			code = http.StatusUnauthorized
			message = "unauthorized"
		case errors.Is(err, apperrors.ErrForbidden):
			code = http.StatusForbidden
			message = "forbidden"
		case errors.Is(err, apperrors.ErrConflict):
			code = http.StatusConflict
			message = "resource already exists"
		case errors.Is(err, apperrors.ErrRateLimited):
			code = http.StatusTooManyRequests
			message = "rate limit exceeded"
		case errors.Is(err, apperrors.ErrUnavailable):
			code = http.StatusServiceUnavailable
			message = "service unavailable"
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && code < 500 {
			message = appErr.Message
		}
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	log := logger.FromContext(c)

	if code >= 500 {
		log.Error("request failed",
			zap.String("request_id", requestID),
			zap.Int("status", code),
			zap.Error(err),
		)
		// Never leak internals to clients.
		message = "internal server error"
	} else {
		log.Warn("client error",
			zap.String("request_id", requestID),
			zap.Int("status", code),
			zap.Error(err),
		)
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		log.Error("failed to write error response", zap.Error(err))
	}
}
