// Package tally counts occurrences of non-negative integers and derives
// descriptive statistics from the counts.
//
// An Engine owns one InputCollection at a time. Counts and Statistics are
// computed lazily, memoized, and discarded together whenever SetData
// accepts new data. All Engine methods are safe for concurrent use.
package tally

import (
	"slices"
	"sync"
	"time"
)

// Engine owns an input collection and the artifacts derived from it.
type Engine struct {
	mu       sync.Mutex
	data     []int
	cache    memo
	kind     Kind
	observer Observer
	now      func() time.Time
}

// New creates an engine holding a copy of values.
func New(values []int, opts ...Option) (*Engine, error) {
	e := &Engine{
		kind:     KindBasic,
		observer: nopObserver{},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	err := e.SetData(values)
	if err != nil {
		return nil, err
	}

	return e, nil
}

// SetData validates values and replaces the current collection, clearing
// every cached artifact. On error the previous data and cache are kept.
func (e *Engine) SetData(values []int) error {
	err := Validate(values)
	if err != nil {
		return err
	}

	data := slices.Clone(values)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.data = data
	e.cache = memo{}

	return nil
}

// Data returns a copy of the current collection.
func (e *Engine) Data() []int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.data)
}

// Kind returns the engine variant.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Counts returns the cached CountMap, computing it on first use.
func (e *Engine) Counts() CountMap {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.counts().clone()
}

// CountFold counts the current data with the fold algorithm. The cache is
// neither read nor written.
func (e *Engine) CountFold() CountMap {
	e.mu.Lock()
	defer e.mu.Unlock()

	return CountFold(e.data)
}

// CountIter counts the current data with the iterator algorithm. The cache
// is neither read nor written.
func (e *Engine) CountIter() CountMap {
	e.mu.Lock()
	defer e.mu.Unlock()

	return CountIter(slices.Values(e.data))
}

// Statistics returns the cached Statistics, computing them (and the counts
// they derive from) on first use.
func (e *Engine) Statistics() Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.statistics().clone()
}

// FormattedCounts returns the counts paired with display names in ascending
// value order.
func (e *Engine) FormattedCounts() []NamedCount {
	e.mu.Lock()
	defer e.mu.Unlock()

	return NameCounts(e.counts())
}

// counts returns the cached CountMap. The caller holds e.mu and must not
// mutate the result.
func (e *Engine) counts() CountMap {
	if counts, ok := e.cache.counts.get(); ok {
		e.observer.Reused(ArtifactCounts)

		return counts
	}

	start := e.now()

	var counts CountMap

	switch e.kind {
	case KindOptimized:
		counts = countDense(e.data)
	default:
		counts = CountDirect(e.data)
	}

	e.cache.counts.set(counts)
	e.observer.Computed(ArtifactCounts, e.now().Sub(start))

	return counts
}

// statistics returns the cached Statistics. The caller holds e.mu and must
// not mutate the result.
func (e *Engine) statistics() Statistics {
	if statistics, ok := e.cache.statistics.get(); ok {
		e.observer.Reused(ArtifactStatistics)

		return statistics
	}

	counts := e.counts()
	start := e.now()
	statistics := Describe(counts)

	e.cache.statistics.set(statistics)
	e.observer.Computed(ArtifactStatistics, e.now().Sub(start))

	return statistics
}
