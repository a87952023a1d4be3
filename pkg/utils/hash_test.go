package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// sha256("admin123")
	const want = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	assert.Equal(t, want, HashPassword("admin123"))
	assert.True(t, CheckPassword(want, "admin123"))
	assert.False(t, CheckPassword(want, "admin1234"))
}
