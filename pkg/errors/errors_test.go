package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfUnwrapsChain(t *testing.T) {
	base := New(CodeNotFound, "Property not found")
	wrapped := fmt.Errorf("get property: %w", base)

	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.Equal(t, "Property not found", MessageOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, CodeUnknown, CodeOf(err))
	assert.Equal(t, "boom", MessageOf(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, CodeInternal, "create property failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: create property failed: disk full", err.Error())
	assert.Equal(t, "invalid: missing", Wrap(nil, CodeInvalid, "missing").Error())
}

func TestWithMeta(t *testing.T) {
	err := Newf(CodeConflict, "admin %s exists", "a@b.c").WithMeta("field", "email")
	assert.Equal(t, "email", err.Meta["field"])
	assert.Equal(t, "admin a@b.c exists", err.Message)
}
