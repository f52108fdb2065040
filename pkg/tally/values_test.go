package tally_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []int
		reason string
		index  int
	}{
		{name: "valid", values: []int{0, 1, 2}},
		{name: "nil", values: nil, reason: tally.ReasonEmptyInput, index: -1},
		{name: "empty", values: []int{}, reason: tally.ReasonEmptyInput, index: -1},
		{name: "negative", values: []int{1, -1}, reason: tally.ReasonInvalidValue, index: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tally.Validate(tt.values)
			if tt.reason == "" {
				assert.NoError(t, err)

				return
			}

			var validationErr *tally.ValidationError

			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, tally.ErrValidation)
			assert.Equal(t, tt.reason, validationErr.Reason)
			assert.Equal(t, tt.index, validationErr.Index)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, tally.Validate(nil), "empty input")
	assert.EqualError(t, tally.Validate([]int{3, -7}), "invalid value at index 1: -7")
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []any
		want    []int
		wantErr string
	}{
		{name: "ints", raw: []any{1, int64(2), uint8(3)}, want: []int{1, 2, 3}},
		{name: "integral_floats", raw: []any{2.0, float32(4)}, want: []int{2, 4}},
		{name: "json_numbers", raw: []any{json.Number("7"), json.Number("8.0")}, want: []int{7, 8}},
		{name: "empty", raw: []any{}, wantErr: tally.ReasonEmptyInput},
		{name: "fractional", raw: []any{1, 1.5}, wantErr: tally.ReasonInvalidValue},
		{name: "negative", raw: []any{-1}, wantErr: tally.ReasonInvalidValue},
		{name: "negative_float", raw: []any{-2.0}, wantErr: tally.ReasonInvalidValue},
		{name: "string", raw: []any{"3"}, wantErr: tally.ReasonInvalidValue},
		{name: "nil_element", raw: []any{nil}, wantErr: tally.ReasonInvalidValue},
		{name: "nan", raw: []any{math.NaN()}, wantErr: tally.ReasonInvalidValue},
		{name: "inf", raw: []any{math.Inf(1)}, wantErr: tally.ReasonInvalidValue},
		{name: "uint64_overflow", raw: []any{uint64(math.MaxUint64)}, wantErr: tally.ReasonInvalidValue},
		{name: "bad_json_number", raw: []any{json.Number("x")}, wantErr: tally.ReasonInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tally.Coerce(tt.raw)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			var validationErr *tally.ValidationError

			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantErr, validationErr.Reason)
			assert.Nil(t, got)
		})
	}
}
