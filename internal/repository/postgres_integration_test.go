//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/repository/repotest"
	"github.com/megareality/estate/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("estate"),
		tcpostgres.WithUsername("estate"),
		tcpostgres.WithPassword("estate"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(ctx, database.Options{Driver: database.DriverPostgres, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))

	repotest.Run(t, repository.NewGormRepositories(db))
}
