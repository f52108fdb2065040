package tally_test

import (
	"sync"
	"time"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

var demoValues = []int{0, 3, 2, 4, 8, 0, 4, 8, 2, 4}

// recordingObserver counts cache events per artifact.
type recordingObserver struct {
	mu       sync.Mutex
	computed map[tally.Artifact]int
	reused   map[tally.Artifact]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{
		computed: make(map[tally.Artifact]int),
		reused:   make(map[tally.Artifact]int),
	}
}

func (r *recordingObserver) Computed(artifact tally.Artifact, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.computed[artifact]++
}

func (r *recordingObserver) Reused(artifact tally.Artifact) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reused[artifact]++
}

func (r *recordingObserver) counts(artifact tally.Artifact) (computed, reused int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.computed[artifact], r.reused[artifact]
}

// steppingClock advances by step on every reading.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newSteppingClock(step time.Duration) *steppingClock {
	return &steppingClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.now
	c.now = c.now.Add(c.step)

	return current
}
