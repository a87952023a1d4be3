package types

import (
	"errors"
	"net/http"
	"testing"

	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[appErr.Code]int{
		appErr.CodeInvalid:      http.StatusBadRequest,
		appErr.CodeInvariant:    http.StatusBadRequest,
		appErr.CodeNotFound:     http.StatusNotFound,
		appErr.CodeConflict:     http.StatusConflict,
		appErr.CodeUnauthorized: http.StatusUnauthorized,
		appErr.CodeUnavailable:  http.StatusServiceUnavailable,
		appErr.CodeInternal:     http.StatusInternalServerError,
		appErr.CodeUnknown:      http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), code)
	}
}

func TestFromAppError(t *testing.T) {
	assert.Nil(t, FromAppError(nil))
	assert.Equal(t, &APIError{Code: "not_found", Message: "Agent not found"},
		FromAppError(appErr.New(appErr.CodeNotFound, "Agent not found")))
	assert.Equal(t, &APIError{Code: "unknown", Message: "boom"}, FromAppError(errors.New("boom")))
}
