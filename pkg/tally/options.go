package tally

import "time"

// Option configures an Engine.
type Option func(*Engine)

// WithObserver installs an Observer for cache events. A nil observer is ignored.
func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// withClock replaces the clock used to time computations and benchmarks.
func withClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func withKind(kind Kind) Option {
	return func(e *Engine) {
		e.kind = kind
	}
}
