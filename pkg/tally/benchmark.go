package tally

import (
	"slices"
	"time"
)

// Method names a counting algorithm.
type Method string

// Counting algorithms.
const (
	// MethodDirect is the engine's own cached counting path: the hash map
	// tally for KindBasic and the dense bucket count for KindOptimized.
	MethodDirect   Method = "direct"
	MethodFold     Method = "fold"
	MethodIterator Method = "iterator"
)

// Methods returns the counting algorithms in benchmark order.
func Methods() []Method {
	return []Method{MethodDirect, MethodFold, MethodIterator}
}

// Label names m for display. MethodDirect carries the engine kind because
// its algorithm depends on it.
func (m Method) Label(kind Kind) string {
	if m == MethodDirect {
		return string(m) + " (" + kind.String() + ")"
	}

	return string(m)
}

// Timings maps each counting algorithm to its elapsed wall-clock time in
// milliseconds.
type Timings map[Method]float64

// Benchmark runs each counting algorithm once and reports how long each took.
// The direct run goes through the cache, so it populates the counts artifact
// when it is stale and measures a cache hit otherwise.
func (e *Engine) Benchmark() Timings {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Timings{
		MethodDirect:   e.measure(func() { e.counts() }),
		MethodFold:     e.measure(func() { CountFold(e.data) }),
		MethodIterator: e.measure(func() { CountIter(slices.Values(e.data)) }),
	}
}

func (e *Engine) measure(run func()) float64 {
	start := e.now()

	run()

	return float64(e.now().Sub(start)) / float64(time.Millisecond)
}
