package tally

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Entry is one value and the number of times it occurs.
type Entry struct {
	Value int `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

// CountMap maps each distinct value to its occurrence count.
// Entries are sorted ascending by Value and every Count is at least 1.
type CountMap []Entry

// Len returns the number of distinct values.
func (c CountMap) Len() int {
	return len(c)
}

// Total returns the sum of all counts.
func (c CountMap) Total() int {
	total := 0

	for _, e := range c {
		total += e.Count
	}

	return total
}

// Get returns the count for value and whether value is present.
func (c CountMap) Get(value int) (int, bool) {
	i, found := slices.BinarySearchFunc(c, value, func(e Entry, target int) int {
		return cmp.Compare(e.Value, target)
	})
	if !found {
		return 0, false
	}

	return c[i].Count, true
}

// Values returns the distinct values in ascending order.
func (c CountMap) Values() []int {
	values := make([]int, len(c))

	for i, e := range c {
		values[i] = e.Value
	}

	return values
}

// Counts returns the counts in ascending value order.
func (c CountMap) Counts() []int {
	counts := make([]int, len(c))

	for i, e := range c {
		counts[i] = e.Count
	}

	return counts
}

// Map returns the counts as a plain map.
func (c CountMap) Map() map[int]int {
	m := make(map[int]int, len(c))

	for _, e := range c {
		m[e.Value] = e.Count
	}

	return m
}

// Equal reports whether c and other hold the same values with the same counts.
func (c CountMap) Equal(other CountMap) bool {
	return slices.Equal(c, other)
}

// String renders one "value: count" line per entry.
func (c CountMap) String() string {
	var sb strings.Builder

	for _, e := range c {
		fmt.Fprintf(&sb, "%d: %d\n", e.Value, e.Count)
	}

	return sb.String()
}

func (c CountMap) clone() CountMap {
	return slices.Clone(c)
}

func compareEntries(a, b Entry) int {
	return cmp.Compare(a.Value, b.Value)
}

// fromTally converts an unordered tally into a CountMap.
func fromTally(tally map[int]int) CountMap {
	counts := make(CountMap, 0, len(tally))

	for value, count := range tally {
		counts = append(counts, Entry{Value: value, Count: count})
	}

	slices.SortFunc(counts, compareEntries)

	return counts
}
