package tally

import "time"

// Artifact names a cached derivation.
type Artifact string

// Cached artifacts.
const (
	ArtifactCounts     Artifact = "counts"
	ArtifactStatistics Artifact = "statistics"
)

// Observer receives cache events from an Engine. Calls are made while the
// engine lock is held, so implementations must not call back into the engine.
type Observer interface {
	// Computed is called after an artifact was derived from the data.
	Computed(artifact Artifact, elapsed time.Duration)
	// Reused is called when a cached artifact is served without recomputation.
	Reused(artifact Artifact)
}

type nopObserver struct{}

func (nopObserver) Computed(Artifact, time.Duration) {}

func (nopObserver) Reused(Artifact) {}
