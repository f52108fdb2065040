package tally

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Verify cross-checks the cached counts against the fold and iterator
// algorithms over the current data.
func (e *Engine) Verify() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return agree(e.counts(), CountFold(e.data), CountIter(slices.Values(e.data)))
}

func agree(direct, folded, iterated CountMap) error {
	if !direct.Equal(folded) {
		return mismatch(MethodFold, direct, folded)
	}

	if !direct.Equal(iterated) {
		return mismatch(MethodIterator, direct, iterated)
	}

	return nil
}

func mismatch(method Method, want, got CountMap) error {
	return fmt.Errorf("%w: %s differs from %s\n%s", ErrAlgorithmMismatch, method, MethodDirect, diffCounts(want, got))
}

// diffCounts renders a unified-style line diff between two CountMaps.
func diffCounts(want, got CountMap) string {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(want.String(), got.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		prefix := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
		}

		for line := range strings.Lines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}

	return sb.String()
}
