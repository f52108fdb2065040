package tally

import (
	"encoding/json"
	"math"
	"strconv"
)

// maxExactFloat is the largest integer a float64 represents exactly (2^53).
const maxExactFloat = 1 << 53

// Validate reports whether values is an acceptable InputCollection:
// non-empty, with every element non-negative.
func Validate(values []int) error {
	if len(values) == 0 {
		return emptyInputError()
	}

	for i, v := range values {
		if v < 0 {
			return invalidValueError(i, v)
		}
	}

	return nil
}

// Coerce converts loosely typed decoded values (JSON, YAML, MCP arguments)
// into an InputCollection. Each element must be a non-negative integer;
// floats are accepted only when they have no fractional part.
func Coerce(raw []any) ([]int, error) {
	if len(raw) == 0 {
		return nil, emptyInputError()
	}

	values := make([]int, len(raw))

	for i, item := range raw {
		v, ok := toInt(item)
		if !ok || v < 0 {
			return nil, invalidValueError(i, item)
		}

		values[i] = v
	}

	return values, nil
}

func toInt(item any) (int, bool) {
	switch v := item.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int64ToInt(v)
	case uint:
		return uint64ToInt(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return uint64ToInt(uint64(v))
	case uint64:
		return uint64ToInt(v)
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		return jsonNumberToInt(v)
	default:
		return 0, false
	}
}

func int64ToInt(v int64) (int, bool) {
	if v > math.MaxInt || v < math.MinInt {
		return 0, false
	}

	return int(v), true
}

func uint64ToInt(v uint64) (int, bool) {
	if v > math.MaxInt {
		return 0, false
	}

	return int(v), true
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}

	if math.Abs(f) > maxExactFloat {
		return 0, false
	}

	return int(f), true
}

func jsonNumberToInt(n json.Number) (int, bool) {
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err == nil {
		return int64ToInt(i)
	}

	f, err := n.Float64()
	if err != nil {
		return 0, false
	}

	return floatToInt(f)
}
