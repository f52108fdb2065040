package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const (
	metricCacheHitsTotal   = "tally.cache.hits.total"
	metricCacheMissesTotal = "tally.cache.misses.total"
	metricComputeDuration  = "tally.compute.duration.seconds"

	attrArtifact = "artifact"
)

// computeBucketBoundaries covers 1µs to 1s.
var computeBucketBoundaries = []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1}

// EngineMetrics records engine cache behaviour. It implements tally.Observer.
type EngineMetrics struct {
	cacheHits       metric.Int64Counter
	cacheMisses     metric.Int64Counter
	computeDuration metric.Float64Histogram
}

var _ tally.Observer = (*EngineMetrics)(nil)

// NewEngineMetrics creates engine metric instruments from the given meter.
func NewEngineMetrics(mt metric.Meter) (*EngineMetrics, error) {
	b := newMetricBuilder(mt)

	em := &EngineMetrics{
		cacheHits:       b.counter(metricCacheHitsTotal, "Cached artifacts served without recomputation", "{hit}"),
		cacheMisses:     b.counter(metricCacheMissesTotal, "Artifacts computed from the data", "{miss}"),
		computeDuration: b.histogram(metricComputeDuration, "Artifact computation time in seconds", "s", computeBucketBoundaries...),
	}

	if b.err != nil {
		return nil, b.err
	}

	return em, nil
}

// Computed records a cache miss and its computation time.
// Safe to call on a nil receiver (no-op).
func (em *EngineMetrics) Computed(artifact tally.Artifact, elapsed time.Duration) {
	if em == nil {
		return
	}

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String(attrArtifact, string(artifact)))

	em.cacheMisses.Add(ctx, 1, attrs)
	em.computeDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// Reused records a cache hit. Safe to call on a nil receiver (no-op).
func (em *EngineMetrics) Reused(artifact tally.Artifact) {
	if em == nil {
		return
	}

	em.cacheHits.Add(context.Background(), 1, metric.WithAttributes(attribute.String(attrArtifact, string(artifact))))
}
