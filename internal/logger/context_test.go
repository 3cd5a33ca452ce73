package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestFromContext_FallsBackToGlobal verifies an empty context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithKV_ScopesFields verifies fields attached to a context reach the written entries.
func TestWithKV_ScopesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "stats")
	ctx = WithKV(ctx, "aquarium_id", int64(7))

	InfoKV(ctx, "Aquarium updated", "clearness", 99)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "stats", entries[0].LoggerName)
	require.Equal(t, "Aquarium updated", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, int64(7), fields["aquarium_id"])
	require.Equal(t, int64(99), fields["clearness"])
}

// TestWithFields_AttachesMap verifies map fields are attached as key-value pairs.
func TestWithFields_AttachesMap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithFields(ctx, map[string]any{"request_id": "abc"})

	Warn(ctx, "slow request")

	require.Equal(t, 1, logs.FilterField(zap.String("request_id", "abc")).Len())
}

// TestWithMinLevel verifies the context logger can be made more or less verbose than its core.
func TestWithMinLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	base := ToContext(context.Background(), zap.New(core).Sugar())

	DebugKV(base, "Hidden")
	DebugKV(WithMinLevel(base, zap.DebugLevel), "Shown")
	InfoKV(WithMinLevel(base, zap.ErrorLevel), "Suppressed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "Shown", entries[0].Message)
}
