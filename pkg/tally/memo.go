package tally

type artifactState uint8

const (
	stateStale artifactState = iota
	stateComputed
)

// artifact holds one lazily derived value. The zero value is stale.
type artifact[T any] struct {
	value T
	state artifactState
}

func (a *artifact[T]) get() (T, bool) {
	return a.value, a.state == stateComputed
}

func (a *artifact[T]) set(value T) {
	a.value = value
	a.state = stateComputed
}

// memo groups every artifact derived from the current data so that a single
// assignment of the zero value invalidates all of them together.
type memo struct {
	counts     artifact[CountMap]
	statistics artifact[Statistics]
}
