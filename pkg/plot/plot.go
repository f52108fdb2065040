// Package plot renders the frequency distribution as an interactive HTML
// chart page.
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const (
	chartWidth   = "100%"
	chartHeight  = "480px"
	defaultTitle = "Frequency Analysis"
	pieRadius    = "60%"
)

// Options configures the chart page.
type Options struct {
	Title string
	Theme Theme
}

// Render writes an HTML page with a bar chart of counts and a pie chart of
// shares to w.
func Render(w io.Writer, doc tally.Document, o Options) error {
	title := o.Title
	if title == "" {
		title = defaultTitle
	}

	page := components.NewPage()
	page.PageTitle = title

	page.AddCharts(
		BarChart(doc, title, o.Theme),
		PieChart(doc, o.Theme),
	)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render chart page: %w", err)
	}

	return nil
}

// BarChart builds a bar chart with one bar per distinct value.
func BarChart(doc tally.Document, title string, theme Theme) *charts.Bar {
	c := newChartOpts(theme)
	subtitle := fmt.Sprintf("%d values, %d distinct, entropy %.4f bits",
		doc.Statistics.TotalElements, doc.Statistics.UniqueValues, doc.Statistics.Entropy)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(c.init(chartWidth, chartHeight)),
		charts.WithTitleOpts(c.title(title, subtitle)),
		charts.WithTooltipOpts(c.tooltip("axis")),
		charts.WithXAxisOpts(c.xAxis("Value")),
		charts.WithYAxisOpts(c.yAxis("Count")),
	)

	labels := make([]string, len(doc.Counts))
	data := make([]opts.BarData, len(doc.Counts))

	for i, nc := range doc.Counts {
		labels[i] = nc.Name
		data[i] = opts.BarData{Name: nc.Name, Value: nc.Count}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Count", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: c.p.accent}))

	return bar
}

// PieChart builds a pie chart of each value's share of the total.
func PieChart(doc tally.Document, theme Theme) *charts.Pie {
	c := newChartOpts(theme)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(c.init(chartWidth, chartHeight)),
		charts.WithTitleOpts(c.title("Share", "")),
		charts.WithTooltipOpts(c.tooltip("item")),
		charts.WithLegendOpts(c.legend()),
	)

	data := make([]opts.PieData, len(doc.Statistics.Distribution))

	for i, f := range doc.Statistics.Distribution {
		data[i] = opts.PieData{Name: tally.DisplayName(f.Value), Value: f.Percentage}
	}

	pie.AddSeries("Share", data, charts.WithPieChartOpts(opts.PieChart{Radius: pieRadius}))

	return pie
}
