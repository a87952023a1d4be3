package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/repository/repotest"
	"github.com/megareality/estate/pkg/database"
	"github.com/megareality/estate/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	m.Run()
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "estate.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func TestGormRepositories(t *testing.T) {
	repotest.Run(t, repository.NewGormRepositories(openSQLite(t)))
}

func TestAutoMigrateIsRepeatable(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, repository.AutoMigrate(db))
}
