package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/megareality/estate/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSQLiteCreatesFile(t *testing.T) {
	logger.Replace(zap.NewNop())
	path := filepath.Join(t.TempDir(), "nested", "estate.db")

	db, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Ping(context.Background(), db))
	assert.FileExists(t, path)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "oracle"})
	require.Error(t, err)
}

func TestBackoffCapsDelay(t *testing.T) {
	b := backoff{maxRetries: 5, delay: 500 * time.Millisecond, maxDelay: 5 * time.Second}
	assert.Equal(t, 500*time.Millisecond, b.nextDelay(0))
	assert.Equal(t, 2*time.Second, b.nextDelay(2))
	assert.Equal(t, 5*time.Second, b.nextDelay(6))
}
