// Package report renders a human-readable frequency analysis report.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/tally/pkg/alg/stats"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const (
	reportTitle     = "FREQUENCY ANALYSIS"
	shareBarWidth   = 20
	timingPrecision = 4
	statPrecision   = 2
)

// Data is everything a report shows.
type Data struct {
	Counts     []tally.NamedCount
	Statistics tally.Statistics
	// Kind labels the direct benchmark row.
	Kind tally.Kind
	// Timings is optional; a nil map omits the benchmark section.
	Timings tally.Timings
}

// Collect reads the named counts and statistics from engine, and runs the
// benchmark when withBenchmark is set.
func Collect(engine *tally.Engine, withBenchmark bool) Data {
	data := Data{
		Counts:     engine.FormattedCounts(),
		Statistics: engine.Statistics(),
		Kind:       engine.Kind(),
	}

	if withBenchmark {
		data.Timings = engine.Benchmark()
	}

	return data
}

// Render writes the report for data to w.
func Render(w io.Writer, data Data, cfg Config) error {
	sections := []string{
		drawHeader(reportTitle, humanize.Comma(int64(data.Statistics.TotalElements))+" values", cfg.Width),
		renderCounts(data, cfg),
		renderStatistics(data, cfg),
	}

	if data.Timings != nil {
		sections = append(sections, renderTimings(data.Timings, data.Kind, cfg))
	}

	_, err := io.WriteString(w, strings.Join(sections, "\n\n")+"\n")
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func sectionTitle(title string, cfg Config) string {
	return cfg.paint(title, color.Bold) + "\n" + drawSeparator(cfg.Width)
}

func renderCounts(data Data, cfg Config) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Name", "Value", "Count", "Share", "%"})

	mostFrequent := make(map[int]bool, len(data.Statistics.MostFrequent))
	for _, v := range data.Statistics.MostFrequent {
		mostFrequent[v] = true
	}

	for i, nc := range data.Counts {
		percentage := stats.Percent(nc.Count, data.Statistics.TotalElements)
		if i < len(data.Statistics.Distribution) {
			percentage = data.Statistics.Distribution[i].Percentage
		}

		name := nc.Name
		if mostFrequent[nc.Value] {
			name = cfg.paint(name, color.FgGreen)
		}

		tbl.AppendRow(table.Row{
			name,
			nc.Value,
			humanize.Comma(int64(nc.Count)),
			drawBar(percentage/stats.PercentScale, shareBarWidth),
			strconv.FormatFloat(percentage, 'f', statPrecision, 64),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d values", len(data.Counts))})

	return sectionTitle("Counts", cfg) + "\n" + tbl.Render()
}

func renderStatistics(data Data, cfg Config) string {
	s := data.Statistics
	occurrences := make([]float64, len(s.Distribution))

	for i, f := range s.Distribution {
		occurrences[i] = float64(f.Count)
	}

	mean, stddev := stats.MeanStdDev(occurrences)
	maxEntropy := stats.MaxEntropy(s.UniqueValues)

	entropy := strconv.FormatFloat(s.Entropy, 'f', tally.EntropyPlaces, 64) + " bits"
	if maxEntropy > 0 {
		entropy += fmt.Sprintf(" (%.0f%% of max %.4f)", stats.PercentScale*s.Entropy/maxEntropy, maxEntropy)
	}

	rows := [][2]string{
		{"Total elements", humanize.Comma(int64(s.TotalElements))},
		{"Unique values", humanize.Comma(int64(s.UniqueValues))},
		{"Most frequent", namedValues(s.MostFrequent)},
		{"Least frequent", namedValues(s.LeastFrequent)},
		{"Entropy", entropy},
		{"Count mean", strconv.FormatFloat(mean, 'f', statPrecision, 64)},
		{"Count median", strconv.FormatFloat(stats.Median(occurrences), 'f', statPrecision, 64)},
		{"Count stddev", strconv.FormatFloat(stddev, 'f', statPrecision, 64)},
	}

	return sectionTitle("Statistics", cfg) + "\n" + renderPairs(rows, cfg)
}

func renderTimings(timings tally.Timings, kind tally.Kind, cfg Config) string {
	rows := make([][2]string, 0, len(timings))

	for _, method := range tally.Methods() {
		elapsed, ok := timings[method]
		if !ok {
			continue
		}

		rows = append(rows, [2]string{method.Label(kind), strconv.FormatFloat(elapsed, 'f', timingPrecision, 64) + " ms"})
	}

	return sectionTitle("Benchmark", cfg) + "\n" + renderPairs(rows, cfg)
}

func renderPairs(rows [][2]string, cfg Config) string {
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row[0]))
	}

	lines := make([]string, len(rows))

	for i, row := range rows {
		label := row[0] + strings.Repeat(" ", labelWidth-len(row[0]))
		lines[i] = "  " + cfg.paint(label, color.FgCyan) + "  " + row[1]
	}

	return strings.Join(lines, "\n")
}

func namedValues(values []int) string {
	parts := make([]string, len(values))

	for i, v := range values {
		parts[i] = fmt.Sprintf("%d (%s)", v, tally.DisplayName(v))
	}

	return strings.Join(parts, ", ")
}
