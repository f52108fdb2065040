package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type verifyCommand struct {
	*app

	noColor bool
}

func newVerifyCommand(a *app) *cobra.Command {
	vc := &verifyCommand{app: a}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the counting methods",
		Long: `Count the dataset with the direct, fold and iterator methods and check
that all three agree. Exits non-zero and prints a diff when they do not.`,
		Args: cobra.NoArgs,
		RunE: vc.run,
	}

	cmd.Flags().BoolVar(&vc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (vc *verifyCommand) run(cmd *cobra.Command, _ []string) error {
	engine, err := vc.newEngine(cmd)
	if err != nil {
		return err
	}

	ok := vc.painter(color.FgGreen, color.Bold)
	bad := vc.painter(color.FgRed, color.Bold)
	out := cmd.OutOrStdout()

	verifyErr := engine.Verify()
	if verifyErr != nil {
		fmt.Fprintln(out, bad.Sprint("✗ inconsistent"))

		return verifyErr
	}

	fmt.Fprintf(out, "%s %d values, %d distinct\n",
		ok.Sprint("✓ consistent:"), len(engine.Data()), engine.Counts().Len())

	return nil
}

func (vc *verifyCommand) painter(attrs ...color.Attribute) *color.Color {
	painter := color.New(attrs...)
	if vc.noColor || vc.cfg.Report.NoColor {
		painter.DisableColor()
	}

	return painter
}
