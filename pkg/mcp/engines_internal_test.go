package mcp

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func TestFingerprint_OrderSensitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, fingerprint([]int{1, 2, 3}), fingerprint([]int{1, 2, 3}))
	assert.NotEqual(t, fingerprint([]int{1, 2, 3}), fingerprint([]int{3, 2, 1}))
	assert.NotEqual(t, fingerprint([]int{0}), fingerprint([]int{0, 0}))
}

func TestEnginePool_ReusesEngines(t *testing.T) {
	t.Parallel()

	pool := newEnginePool(2, tally.KindOptimized, slog.Default())

	first, err := pool.get([]int{1, 1, 2})
	require.NoError(t, err)

	again, err := pool.get([]int{1, 1, 2})
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.Equal(t, tally.KindOptimized, first.Kind())

	other, err := pool.get([]int{2, 1, 1})
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	stats := pool.stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 2, stats.Entries)
}

func TestEnginePool_Evicts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pool := newEnginePool(1, tally.KindBasic, logger)

	first, err := pool.get([]int{1})
	require.NoError(t, err)

	_, err = pool.get([]int{2})
	require.NoError(t, err)

	again, err := pool.get([]int{1})
	require.NoError(t, err)

	assert.NotSame(t, first, again)
	assert.Equal(t, int64(2), pool.stats().Evictions)

	out := buf.String()
	assert.Contains(t, out, "engine evicted")
	assert.Contains(t, out, "fingerprint="+strconv.FormatUint(fingerprint([]int{1}), 16))
	assert.Contains(t, out, "fingerprint="+strconv.FormatUint(fingerprint([]int{2}), 16))
	assert.Contains(t, out, "values=1")
}

func TestEnginePool_RejectsInvalid(t *testing.T) {
	t.Parallel()

	pool := newEnginePool(0, tally.KindBasic, slog.Default())

	_, err := pool.get([]int{-1})
	require.ErrorIs(t, err, tally.ErrValidation)
	assert.Zero(t, pool.stats().Entries)
	assert.Equal(t, DefaultEngineCacheSize, pool.stats().MaxEntries)
}
