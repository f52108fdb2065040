package tally

import "strconv"

// numberLabelPrefix prefixes the label of values without an ordinal name.
const numberLabelPrefix = "Number_"

var ordinalNames = [...]string{
	"Zero", "One", "Two", "Three", "Four", "Five",
	"Six", "Seven", "Eight", "Nine", "Ten",
}

// NamedCount is a CountMap entry paired with its display name.
type NamedCount struct {
	Name  string `json:"name"  yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// DisplayName returns the display name of value: "Zero" through "Ten" for
// 0..10 and "Number_<value>" otherwise.
func DisplayName(value int) string {
	if value >= 0 && value < len(ordinalNames) {
		return ordinalNames[value]
	}

	return numberLabelPrefix + strconv.Itoa(value)
}

// NameCounts pairs every entry of counts with its display name, keeping
// ascending value order.
func NameCounts(counts CountMap) []NamedCount {
	named := make([]NamedCount, len(counts))

	for i, e := range counts {
		named[i] = NamedCount{Name: DisplayName(e.Value), Value: e.Value, Count: e.Count}
	}

	return named
}
