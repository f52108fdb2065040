package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/pkg/report"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

var demoValues = []int{0, 3, 2, 4, 8, 0, 4, 8, 2, 4}

func renderDemo(t *testing.T, withBenchmark bool) string {
	t.Helper()

	engine, err := tally.New(demoValues)
	require.NoError(t, err)

	var buf bytes.Buffer

	cfg := report.Config{Width: report.DefaultWidth, NoColor: true}

	require.NoError(t, report.Render(&buf, report.Collect(engine, withBenchmark), cfg))

	return buf.String()
}

func TestRenderContainsAllSections(t *testing.T) {
	t.Parallel()

	out := renderDemo(t, true)

	for _, want := range []string{
		"FREQUENCY ANALYSIS",
		"10 values",
		"Counts",
		"Zero",
		"Four",
		"Eight",
		"30.00",
		"TOTAL: 5 VALUES",
		"Statistics",
		"4 (Four)",
		"3 (Three)",
		"2.2464 bits",
		"Benchmark",
		"direct (basic)",
		"fold",
		"iterator",
		" ms",
	} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, "\x1b[")
}

func TestRenderWithoutBenchmark(t *testing.T) {
	t.Parallel()

	out := renderDemo(t, false)

	assert.NotContains(t, out, "Benchmark")
	assert.Contains(t, out, "Entropy")
}

func TestRenderSingleValueOmitsEntropyRatio(t *testing.T) {
	t.Parallel()

	engine, err := tally.New([]int{0, 0, 0, 0, 0})
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, report.Render(&buf, report.Collect(engine, false), report.Config{Width: 60, NoColor: true}))

	assert.Contains(t, buf.String(), "0.0000 bits")
	assert.NotContains(t, buf.String(), "of max")
	assert.Contains(t, buf.String(), "0 (Zero)")
}

func TestNewConfigClampsWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, report.MaxWidth, report.NewConfig(500, true).Width)
	assert.Equal(t, report.MinWidth, report.NewConfig(10, true).Width)
	assert.Equal(t, 100, report.NewConfig(100, true).Width)
	assert.True(t, report.NewConfig(100, true).NoColor)
}

func TestDetectWidthFromEnv(t *testing.T) {
	t.Setenv("COLUMNS", "99")
	assert.Equal(t, 99, report.DetectWidth())

	t.Setenv("COLUMNS", "wide")
	assert.Equal(t, report.DefaultWidth, report.DetectWidth())
}
