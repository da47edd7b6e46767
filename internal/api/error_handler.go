package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Pacdac/task-management-app/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse carries one message per failing field so clients can
// surface errors next to the right form input.
type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// authFailedResponse is the envelope for failed credential checks. It is
// deliberately identical for unknown usernames and wrong passwords.
type authFailedResponse struct {
	Error      string `json:"error"`
	ErrorCode  string `json:"error_code"`
	Suggestion string `json:"suggestion"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{
				Error:  "validation failed",
				Fields: ve.Fields,
			})
			return
		}

		if errors.Is(err, domain.ErrInvalidCredentials) {
			_ = c.JSON(http.StatusUnauthorized, authFailedResponse{
				Error:      "authentication failed",
				ErrorCode:  "AUTH_FAILED",
				Suggestion: "check your username and password and try again",
			})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "username or email already in use"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "task not found"
	case errors.Is(err, domain.ErrStatusNotFound):
		return http.StatusNotFound, "task status not found"
	case errors.Is(err, domain.ErrStatusExists):
		return http.StatusConflict, "task status already exists"
	case errors.Is(err, domain.ErrPriorityNotFound):
		return http.StatusNotFound, "task priority not found"
	case errors.Is(err, domain.ErrPriorityExists):
		return http.StatusConflict, "task priority already exists"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "task category not found"
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict, "task category already exists"
	case errors.Is(err, domain.ErrUnknownRole):
		return http.StatusBadRequest, "unknown role"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
