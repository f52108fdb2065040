package tally

import (
	"slices"

	"github.com/Sumatoshi-tech/tally/pkg/alg/stats"
)

// Rounding precision of derived statistics, in decimal places.
const (
	PercentagePlaces = 2
	EntropyPlaces    = 4
)

// Frequency is one row of the frequency distribution.
type Frequency struct {
	Value      int     `json:"value"      yaml:"value"`
	Count      int     `json:"count"      yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Statistics is a read-only snapshot derived from a CountMap.
type Statistics struct {
	TotalElements int         `json:"total_elements"         yaml:"total_elements"`
	UniqueValues  int         `json:"unique_values"          yaml:"unique_values"`
	MostFrequent  []int       `json:"most_frequent"          yaml:"most_frequent"`
	LeastFrequent []int       `json:"least_frequent"         yaml:"least_frequent"`
	Distribution  []Frequency `json:"frequency_distribution" yaml:"frequency_distribution"`
	Entropy       float64     `json:"entropy"                yaml:"entropy"`
}

// Describe derives Statistics from counts. Ties for the highest and lowest
// count are all reported, in ascending value order.
func Describe(counts CountMap) Statistics {
	total := counts.Total()
	occurrences := counts.Counts()
	highest := stats.Max(occurrences)
	lowest := stats.Min(occurrences)

	result := Statistics{
		TotalElements: total,
		UniqueValues:  counts.Len(),
		MostFrequent:  []int{},
		LeastFrequent: []int{},
		Distribution:  make([]Frequency, 0, counts.Len()),
		Entropy:       stats.Round(stats.Entropy(occurrences), EntropyPlaces),
	}

	for _, e := range counts {
		if e.Count == highest {
			result.MostFrequent = append(result.MostFrequent, e.Value)
		}

		if e.Count == lowest {
			result.LeastFrequent = append(result.LeastFrequent, e.Value)
		}

		result.Distribution = append(result.Distribution, Frequency{
			Value:      e.Value,
			Count:      e.Count,
			Percentage: stats.Round(stats.Percent(e.Count, total), PercentagePlaces),
		})
	}

	return result
}

func (s Statistics) clone() Statistics {
	s.MostFrequent = slices.Clone(s.MostFrequent)
	s.LeastFrequent = slices.Clone(s.LeastFrequent)
	s.Distribution = slices.Clone(s.Distribution)

	return s
}
