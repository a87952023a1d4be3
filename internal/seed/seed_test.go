package seed

import (
	"context"
	"testing"
	"time"

	"github.com/megareality/estate/internal/repository"
	"github.com/megareality/estate/internal/repository/memory"
	"github.com/megareality/estate/pkg/logger"
	"github.com/megareality/estate/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Replace(zap.NewNop())
	m.Run()
}

func TestRunSeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	res, err := Run(ctx, repos, now)
	require.NoError(t, err)
	assert.Equal(t, Result{Admins: 1, Properties: 6}, res)

	res, err = Run(ctx, repos, now)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)

	admins, err := repos.Admins.All(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, uint(1), admins[0].ID)
	assert.True(t, utils.CheckPassword(admins[0].PasswordHash, DefaultAdminPassword))

	props, err := repos.Properties.All(ctx)
	require.NoError(t, err)
	require.Len(t, props, 6)
	for i, p := range props {
		assert.Equal(t, uint(i+1), p.ID)
	}
}

func TestSamplePriceWindow(t *testing.T) {
	ctx := context.Background()
	repos := memory.New()
	_, err := Run(ctx, repos, time.Now())
	require.NoError(t, err)

	lo, hi := 1000000.0, 3000000.0
	got, err := repos.Properties.List(ctx, repository.PropertyFilter{MinPrice: &lo, MaxPrice: &hi})
	require.NoError(t, err)

	prices := make([]float64, 0, len(got))
	for _, p := range got {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []float64{2500000, 1200000}, prices)
}
