package middleware

import (
	"errors"
	"net/http"

	"mobileHospital/domain"
	"mobileHospital/pkg/logger"

	jsonres "mobileHospital/pkg/response"

	"github.com/labstack/echo/v4"
)

// StatusFor maps a domain error to an HTTP status and error code.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrDuplicatePhone):
		return http.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrNotRegistered):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotAuthorized), errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrWrongMode), errors.Is(err, domain.ErrAlreadySignedIn):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
	}
}

// ErrorBody renders err in the shared envelope. Validation errors carry the
// offending field as details.
func ErrorBody(err error) (int, jsonres.ErrorBody) {
	status, code := StatusFor(err)

	var details interface{}
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		details = map[string]string{"field": vErr.Field, "reason": vErr.Reason}
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return status, jsonres.Error(code, message, details)
}

// ErrorHandler is the echo HTTPErrorHandler. It renders echo errors with
// their own status and everything else through StatusFor.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var status int
	var body jsonres.ErrorBody

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		body = jsonres.Error(http.StatusText(he.Code), messageOf(he), nil)
	} else {
		status, body = ErrorBody(err)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}

func messageOf(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return http.StatusText(he.Code)
}
