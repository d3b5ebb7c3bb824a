package server

import (
	"errors"
	"net/http"

	"github.com/postpilot/postpilot/internal/apperrors"
	"github.com/postpilot/postpilot/internal/blog"
	"github.com/postpilot/postpilot/internal/content"
	"github.com/postpilot/postpilot/internal/session"
	"github.com/postpilot/postpilot/internal/validation"
)

// Messages for errors whose details stay in the logs
const (
	msgInternal   = "internal server error"
	msgGeneration = "content generation failed, please try again"
	msgNotFound   = "post not found"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, content.ErrGeneration):
		return http.StatusBadGateway
	case errors.Is(err, blog.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidKey):
		return http.StatusBadRequest
	}

	switch apperrors.TypeOf(err) {
	case apperrors.ErrTypeNotFound:
		return http.StatusNotFound
	case apperrors.ErrTypeInvalidInput:
		return http.StatusBadRequest
	case apperrors.ErrTypeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrTypeForbidden:
		return http.StatusForbidden
	case apperrors.ErrTypeConflict:
		return http.StatusConflict
	case apperrors.ErrTypeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error payload. Errors lists field failures for
// validation errors only.
type errorBody struct {
	Error  string                  `json:"error"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// publicError builds the payload for err without leaking internal detail.
func publicError(err error, status int) errorBody {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return errorBody{Error: "validation failed", Errors: verr.Fields}
	}

	switch {
	case errors.Is(err, content.ErrGeneration):
		return errorBody{Error: msgGeneration}
	case errors.Is(err, blog.ErrPostNotFound):
		return errorBody{Error: msgNotFound}
	case errors.Is(err, session.ErrInvalidKey):
		return errorBody{Error: "invalid session id"}
	}

	var de *apperrors.DomainError
	if errors.As(err, &de) && status < http.StatusInternalServerError {
		return errorBody{Error: de.Message}
	}
	if status == http.StatusServiceUnavailable && de != nil {
		return errorBody{Error: de.Message}
	}
	return errorBody{Error: msgInternal}
}
