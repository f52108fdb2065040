package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/plot"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const defaultPlotOutput = "tally.html"

// ErrUnknownTheme is returned for a --theme other than light or dark.
var ErrUnknownTheme = errors.New("unknown theme")

type plotCommand struct {
	*app

	output string
	title  string
	theme  string
}

func newPlotCommand(a *app) *cobra.Command {
	pc := &plotCommand{app: a}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Write an HTML chart of the distribution",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVarP(&pc.output, "output", "o", defaultPlotOutput, "Output HTML file (- for stdout)")
	cmd.Flags().StringVar(&pc.title, "title", "", "Page title")
	cmd.Flags().StringVar(&pc.theme, "theme", string(plot.ThemeLight), "Chart theme: light, dark")

	return cmd
}

func (pc *plotCommand) run(cmd *cobra.Command, _ []string) error {
	theme := plot.Theme(pc.theme)
	if theme != plot.ThemeLight && theme != plot.ThemeDark {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, pc.theme)
	}

	engine, err := pc.newEngine(cmd)
	if err != nil {
		return err
	}

	payload, err := engine.Export(tally.FormatArray.String())
	if err != nil {
		return err
	}

	opts := plot.Options{Title: pc.title, Theme: theme}

	if pc.output == "-" {
		return plot.Render(cmd.OutOrStdout(), payload.Document, opts)
	}

	f, err := os.Create(pc.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", pc.output, err)
	}

	renderErr := plot.Render(f, payload.Document, opts)
	closeErr := f.Close()

	writeErr := errors.Join(renderErr, closeErr)
	if writeErr != nil {
		return writeErr
	}

	pc.logger.Info("chart written", "path", pc.output)

	return nil
}
