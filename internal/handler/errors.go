package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franchise-api/backend/internal/model"
	"github.com/franchise-api/backend/internal/service"
)

// writeError maps a service error onto the HTTP status it stands for and
// renders the shared error envelope.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "an unexpected error occurred"
	}
	c.JSON(status, model.APIError{
		Path:      c.Request.URL.Path,
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Details:   []string{},
		Timestamp: time.Now().UTC(),
	})
}

// writeBindError renders a 400 for a request body that failed binding.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.APIError{
		Path:      c.Request.URL.Path,
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   "request body is invalid",
		Details:   []string{err.Error()},
		Timestamp: time.Now().UTC(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidResetToken),
		errors.Is(err, service.ErrResetTokenExpired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
