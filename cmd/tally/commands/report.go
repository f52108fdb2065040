package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/report"
)

type reportCommand struct {
	*app

	width       int
	noColor     bool
	noBenchmark bool
}

func newReportCommand(a *app) *cobra.Command {
	rc := &reportCommand{app: a}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the frequency report",
		Long: `Print the named counts table, the distribution statistics and the
timings of the three counting methods.`,
		Args: cobra.NoArgs,
		RunE: rc.run,
	}

	cmd.Flags().IntVar(&rc.width, "width", 0, "Report width in columns (default from config, 0 = detect)")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&rc.noBenchmark, "no-benchmark", false, "Omit the benchmark section")

	return cmd
}

func (rc *reportCommand) run(cmd *cobra.Command, _ []string) error {
	engine, err := rc.newEngine(cmd)
	if err != nil {
		return err
	}

	width := rc.width
	if !cmd.Flags().Changed("width") {
		width = rc.cfg.Report.Width
	}

	showBenchmark := rc.cfg.Report.ShowBenchmark && !rc.noBenchmark
	renderCfg := report.NewConfig(width, rc.noColor || rc.cfg.Report.NoColor)

	return report.Render(cmd.OutOrStdout(), report.Collect(engine, showBenchmark), renderCfg)
}
