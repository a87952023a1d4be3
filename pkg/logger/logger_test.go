package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitRejectsBadInput(t *testing.T) {
	_, err := Init("loud", "json")
	require.Error(t, err)

	_, err = Init("info", "xml")
	require.Error(t, err)
}

func TestInitSetsGlobal(t *testing.T) {
	l, err := Init("debug", "console")
	require.NoError(t, err)
	require.Same(t, l, L())

	nop := zap.NewNop()
	Replace(nop)
	require.Same(t, nop, L())
	Sync()
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Replace(zap.New(core))

	ctx := context.Background()
	assert.Same(t, L(), From(ctx))

	ctx = With(ctx, zap.String("request_id", "req-1"))
	ctx = With(ctx, zap.Uint("admin_id", 2))
	From(ctx).Info("property created")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"request_id": "req-1", "admin_id": uint64(2)}, entries[0].ContextMap())
}
