package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/pkg/plot"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func demoDocument(t *testing.T) tally.Document {
	t.Helper()

	engine, err := tally.New([]int{0, 3, 2, 4, 8, 0, 4, 8, 2, 4})
	require.NoError(t, err)

	payload, err := engine.Export("array")
	require.NoError(t, err)

	return payload.Document
}

func TestRenderWritesHTMLPage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, plot.Render(&buf, demoDocument(t), plot.Options{Theme: plot.ThemeDark}))

	out := buf.String()
	assert.Contains(t, out, "<html")
	assert.Contains(t, out, "Frequency Analysis")
	assert.Contains(t, out, "Four")
	assert.Contains(t, out, "echarts")
}

func TestBarChartSeries(t *testing.T) {
	t.Parallel()

	bar := plot.BarChart(demoDocument(t), "Demo", plot.ThemeLight)

	require.Len(t, bar.MultiSeries, 1)
	assert.Equal(t, "Count", bar.MultiSeries[0].Name)
	assert.Equal(t, "Demo", bar.Title.Title)
	assert.Contains(t, bar.Title.Subtitle, "entropy 2.2464 bits")
}

func TestPieChartUsesPercentages(t *testing.T) {
	t.Parallel()

	pie := plot.PieChart(demoDocument(t), plot.Theme("unknown"))

	require.Len(t, pie.MultiSeries, 1)
	assert.Equal(t, "Share", pie.MultiSeries[0].Name)
}
