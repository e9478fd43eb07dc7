package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	log = zap.New(core)
	t.Cleanup(func() { log = prev })
	return logs
}

func TestInitialize(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))
}

func TestErrorCtx(t *testing.T) {
	logs := withObserver(t)

	ErrorCtx(context.Background(), errors.New("fetch failed"), zap.String("external_id", "711719417576"))
	ErrorCtx(context.Background(), nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "fetch failed", entries[0].Message)
	assert.Equal(t, "711719417576", entries[0].ContextMap()["external_id"])
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestLevels(t *testing.T) {
	logs := withObserver(t)
	ctx := context.Background()

	DebugCtx(ctx, "debug")
	InfoCtx(ctx, "info")
	WarnCtx(ctx, "warn")

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
