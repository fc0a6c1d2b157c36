package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shs/account-service/internal/api/metrics"
	"github.com/shs/account-service/internal/core/domain"
)

const (
	errorIDInternal   = "internal-server-error"
	errorIDNotFound   = "route-not-found"
	errorIDNotAllowed = "method-not-allowed"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	ErrorID string `json:"error_id"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and error_id.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error_id": "<id>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, id := resolveError(err, log, c)
		metrics.APIErrorsTotal.WithLabelValues(id, strconv.Itoa(code)).Inc()
		if code == http.StatusForbidden {
			metrics.AuthzDenialsTotal.WithLabelValues(c.Path()).Inc()
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{ErrorID: id})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	if code, id, ok := statusOf(err); ok {
		return code, id
	}

	// Echo's own errors (router 404/405, bind failures).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound:
			return he.Code, errorIDNotFound
		case http.StatusMethodNotAllowed:
			return he.Code, errorIDNotAllowed
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
			return http.StatusBadRequest, domain.ErrInvalidRequestBody.Error()
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorIDInternal
}

// statusOf maps a domain sentinel to its HTTP status. The sentinel's text is
// the error_id rendered to the client.
func statusOf(err error) (int, string, bool) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			return m.status, m.err.Error(), true
		}
	}
	return 0, "", false
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrPermissionDenied, http.StatusForbidden},
	{domain.ErrInvalidUsername, http.StatusBadRequest},
	{domain.ErrInvalidPassword, http.StatusBadRequest},
	{domain.ErrInvalidDisplayName, http.StatusBadRequest},
	{domain.ErrInvalidAccountType, http.StatusBadRequest},
	{domain.ErrInvalidRequestBody, http.StatusBadRequest},
	{domain.ErrAccountExists, http.StatusConflict},
	{domain.ErrAccountNotFound, http.StatusNotFound},
}
