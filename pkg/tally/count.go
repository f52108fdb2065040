package tally

import (
	"iter"
	"slices"
)

// denseSpanFactor bounds the value range, relative to the input length,
// for which the dense counter allocates one bucket per possible value.
const denseSpanFactor = 4

// CountDirect tallies values in a single pass. This is the canonical
// algorithm behind Engine.Counts.
func CountDirect(values []int) CountMap {
	tally := make(map[int]int)

	for _, v := range values {
		tally[v]++
	}

	return fromTally(tally)
}

// CountFold builds the same CountMap as CountDirect by folding an
// accumulator over the sequence.
func CountFold(values []int) CountMap {
	tally := fold(values, make(map[int]int), func(acc map[int]int, v int) map[int]int {
		acc[v]++

		return acc
	})

	return fromTally(tally)
}

// CountIter builds the same CountMap as CountDirect by pulling elements one
// at a time from seq, recording first occurrences in order of appearance,
// and sorting by value at the end.
func CountIter(seq iter.Seq[int]) CountMap {
	next, stop := iter.Pull(seq)
	defer stop()

	counts := CountMap{}
	position := make(map[int]int)

	for {
		v, ok := next()
		if !ok {
			break
		}

		if i, seen := position[v]; seen {
			counts[i].Count++

			continue
		}

		position[v] = len(counts)
		counts = append(counts, Entry{Value: v, Count: 1})
	}

	slices.SortFunc(counts, compareEntries)

	return counts
}

// countDense tallies non-negative values into a bucket slice indexed by
// value when the value range is small relative to the input, and falls
// back to CountDirect otherwise.
func countDense(values []int) CountMap {
	if len(values) == 0 {
		return CountMap{}
	}

	maxValue := slices.Max(values)
	if slices.Min(values) < 0 || maxValue >= denseSpanFactor*len(values) {
		return CountDirect(values)
	}

	buckets := make([]int, maxValue+1)

	for _, v := range values {
		buckets[v]++
	}

	counts := CountMap{}

	for value, count := range buckets {
		if count > 0 {
			counts = append(counts, Entry{Value: value, Count: count})
		}
	}

	return counts
}

func fold[T, A any](items []T, acc A, step func(A, T) A) A {
	for _, item := range items {
		acc = step(acc, item)
	}

	return acc
}
