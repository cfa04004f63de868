package services

import (
	"net/http"

	"github.com/go-faster/errors"
)

var ErrAuthentication = errors.New("authentication failed")
var ErrAuthorization = errors.New("not allowed")
var ErrValidation = errors.New("invalid input")
var ErrConflict = errors.New("conflict")
var ErrNotFound = errors.New("not found")
var ErrExternal = errors.New("external service failure")

// HTTPStatus maps a failure to the status code the handlers respond with.
// Unclassified errors are treated as internal.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrExternal):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
