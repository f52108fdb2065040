package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Sumatoshi-tech/tally/pkg/observability"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func TestEngineMetrics_RecordsCacheEvents(t *testing.T) {
	t.Parallel()

	meter, reader := newTestMeter()

	em, err := observability.NewEngineMetrics(meter)
	require.NoError(t, err)

	engine, err := tally.New([]int{1, 2, 2}, tally.WithObserver(em))
	require.NoError(t, err)

	engine.Counts()
	engine.Counts()
	engine.Statistics()
	engine.Statistics()

	rm := collect(t, reader)

	hits := sumByAttr(t, findMetric(rm, "tally.cache.hits.total"), "artifact")
	misses := sumByAttr(t, findMetric(rm, "tally.cache.misses.total"), "artifact")

	assert.Equal(t, int64(2), hits["counts"])
	assert.Equal(t, int64(1), hits["statistics"])
	assert.Equal(t, int64(1), misses["counts"])
	assert.Equal(t, int64(1), misses["statistics"])

	duration := findMetric(rm, "tally.compute.duration.seconds")
	require.NotNil(t, duration)

	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)

	var samples uint64

	for _, dp := range hist.DataPoints {
		samples += dp.Count
	}

	assert.Equal(t, uint64(2), samples)
}

func TestEngineMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var em *observability.EngineMetrics

	assert.NotPanics(t, func() {
		em.Computed(tally.ArtifactCounts, time.Millisecond)
		em.Reused(tally.ArtifactCounts)
	})
}
