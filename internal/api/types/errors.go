package types

import (
	"net/http"

	appErr "github.com/megareality/estate/pkg/errors"
)

// FromAppError converts any error into the JSON error body.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	return &APIError{Code: string(appErr.CodeOf(err)), Message: appErr.MessageOf(err)}
}

// HTTPStatus maps an error code to its response status.
func HTTPStatus(code appErr.Code) int {
	switch code {
	case appErr.CodeInvalid, appErr.CodeInvariant:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict:
		return http.StatusConflict
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
