package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/sink"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

type exportCommand struct {
	*app

	format   string
	output   string
	name     string
	compress bool
}

func newExportCommand(a *app) *cobra.Command {
	ec := &exportCommand{app: a}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export counts and statistics",
		Long: `Export the named counts and statistics as array, json, xml or csv.

The payload goes to stdout unless --output names a file or --name names a
base file name inside export.directory. The array format prints the Go value.`,
		Args: cobra.NoArgs,
		RunE: ec.run,
	}

	cmd.Flags().StringVarP(&ec.format, "format", "f", "", "Export format: "+strings.Join(tally.FormatNames(), ", ")+" (default from config)")
	cmd.Flags().StringVarP(&ec.output, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&ec.name, "name", "", "Base file name written into export.directory")
	cmd.Flags().BoolVar(&ec.compress, "compress", false, "Compress output as an LZ4 frame")
	cmd.MarkFlagsMutuallyExclusive("output", "name")

	return cmd
}

func (ec *exportCommand) run(cmd *cobra.Command, _ []string) error {
	format := ec.format
	if format == "" {
		format = ec.cfg.Export.Format
	}

	engine, err := ec.newEngine(cmd)
	if err != nil {
		return err
	}

	payload, err := engine.Export(format)
	if err != nil {
		return err
	}

	opts := sink.Options{Compress: ec.compress || ec.cfg.Export.Compress}

	path, err := ec.outputPath(payload.Format, opts.Compress)
	if err != nil {
		return err
	}

	if path == "" {
		return sink.Write(cmd.OutOrStdout(), payload, opts)
	}

	err = sink.WriteFile(path, payload, opts)
	if err != nil {
		return fmt.Errorf("export to %s: %w", path, err)
	}

	ec.logger.Info("export written", "path", path, "format", payload.Format, "compressed", opts.Compress)

	return nil
}

func (ec *exportCommand) outputPath(format tally.Format, compress bool) (string, error) {
	if ec.name == "" {
		return ec.output, nil
	}

	return sink.FileName(ec.cfg.Export.Directory, ec.name, format, compress)
}
