package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/task-api/internal/core/domain"
)

// problemDetails is the canonical error envelope for all API errors,
// modelled after RFC 7807.
type problemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

// problemType maps a status code to the envelope's type discriminator.
func problemType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation_error"
	case http.StatusUnauthorized:
		return "authentication_error"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "internal_error"
	}
}

func problemTitle(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Validation Error"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusNotFound:
		return "Not Found"
	default:
		return "Internal Server Error"
	}
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every error as the problem-details envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		problem := resolveError(err, log, c)
		problem.Instance = c.Request().URL.Path
		_ = c.JSON(problem.Status, problem)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) problemDetails {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return problemDetails{
			Type:   problemType(he.Code),
			Title:  problemTitle(he.Code),
			Status: he.Code,
			Detail: fmt.Sprintf("%v", he.Message),
		}
	}

	// Expected domain outcomes → deterministic codes and messages.
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return problemDetails{
			Type:   "validation_error",
			Title:  "Validation Error",
			Status: http.StatusBadRequest,
			Detail: ve.Message,
		}
	case errors.Is(err, domain.ErrEmailTaken):
		return problemDetails{
			Type:   "validation_error",
			Title:  "Validation Error",
			Status: http.StatusBadRequest,
			Detail: "Email already registered",
		}
	case errors.Is(err, domain.ErrUsernameTaken):
		return problemDetails{
			Type:   "validation_error",
			Title:  "Validation Error",
			Status: http.StatusBadRequest,
			Detail: "Username already taken",
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return problemDetails{
			Type:   "authentication_error",
			Title:  "Unauthorized",
			Status: http.StatusUnauthorized,
			Detail: "Invalid email or password",
		}
	case errors.Is(err, domain.ErrTaskNotFound):
		return problemDetails{
			Type:   "not_found",
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: "Task not found",
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return problemDetails{
			Type:   "not_found",
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: "User not found",
		}
	case errors.Is(err, domain.ErrDatabase):
		// Log the real cause; the client only learns a database error occurred.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("database error")
		return problemDetails{
			Type:   "database_error",
			Title:  "Internal Server Error",
			Status: http.StatusInternalServerError,
			Detail: "A database error occurred. Please try again later.",
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return problemDetails{
		Type:   "internal_error",
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred. Please try again later.",
	}
}
