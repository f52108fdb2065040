package tally

import (
	"fmt"
	"strings"
)

// Kind selects an engine variant. All kinds share the same outward contract.
type Kind string

// Engine kinds.
const (
	// KindBasic tallies with a hash map.
	KindBasic Kind = "basic"
	// KindOptimized tallies into a dense bucket slice when the value range allows it.
	KindOptimized Kind = "optimized"
)

// Kinds returns every supported engine kind.
func Kinds() []Kind {
	return []Kind{KindBasic, KindOptimized}
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind resolves a case-insensitive kind name. An empty name selects KindBasic.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case "", KindBasic:
		return KindBasic, nil
	case KindOptimized:
		return KindOptimized, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// NewKind constructs an engine of the given kind.
func NewKind(kind Kind, values []int, opts ...Option) (*Engine, error) {
	resolved, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}

	return New(values, append([]Option{withKind(resolved)}, opts...)...)
}
