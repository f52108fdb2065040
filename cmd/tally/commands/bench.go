package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const defaultBenchRuns = 5

// ErrInvalidRuns is returned when --runs is not positive.
var ErrInvalidRuns = errors.New("runs must be positive")

type benchCommand struct {
	*app

	runs int
}

func newBenchCommand(a *app) *cobra.Command {
	bc := &benchCommand{app: a}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the counting methods",
		Long: `Run the benchmark --runs times on a cold cache and print the best
wall-clock time of each counting method in milliseconds.`,
		Args: cobra.NoArgs,
		RunE: bc.run,
	}

	cmd.Flags().IntVar(&bc.runs, "runs", defaultBenchRuns, "Number of benchmark rounds")

	return cmd
}

func (bc *benchCommand) run(cmd *cobra.Command, _ []string) error {
	if bc.runs <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRuns, bc.runs)
	}

	engine, err := bc.newEngine(cmd)
	if err != nil {
		return err
	}

	best, err := bestTimings(engine, bc.runs)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Method", "Best (ms)"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, method := range tally.Methods() {
		tw.AppendRow(table.Row{method.Label(engine.Kind()), fmt.Sprintf("%.4f", best[method])})
	}

	tw.SetCaption("%d values, best of %d runs", len(engine.Data()), bc.runs)
	tw.Render()

	return nil
}

// bestTimings runs the benchmark runs times, clearing the cache before each
// run, and keeps the minimum per method.
func bestTimings(engine *tally.Engine, runs int) (tally.Timings, error) {
	best := make(tally.Timings, len(tally.Methods()))
	for _, method := range tally.Methods() {
		best[method] = math.Inf(1)
	}

	data := engine.Data()

	for range runs {
		err := engine.SetData(data)
		if err != nil {
			return nil, err
		}

		for method, ms := range engine.Benchmark() {
			best[method] = min(best[method], ms)
		}
	}

	return best, nil
}
