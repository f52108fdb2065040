// Package commands implements CLI command handlers for tally.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/config"
	"github.com/Sumatoshi-tech/tally/pkg/input"
	"github.com/Sumatoshi-tech/tally/pkg/observability"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
	"github.com/Sumatoshi-tech/tally/pkg/version"
)

// demoValues is analyzed when neither --input nor --values is given.
var demoValues = []int{0, 3, 2, 4, 8, 0, 4, 8, 2, 4}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	debug       bool
	quiet       bool
	inputPath   string
	inputFormat string
	values      string
	kind        string

	// diagnosticsAddr is bound by the mcp command.
	diagnosticsAddr string

	cfg       *config.Config
	providers observability.Providers
	logger    *slog.Logger
	metrics   *observability.EngineMetrics
}

// NewRootCommand creates the tally command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Frequency analysis of non-negative integers",
		Long: `Tally counts occurrences of non-negative integers and describes the
resulting distribution.

Values come from --values, from a JSON, YAML or text file given with --input
(use - for stdin), or from a built-in demo dataset.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: tally.yaml in ., ./config, /etc/tally)")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Only log errors")
	flags.StringVarP(&a.inputPath, "input", "i", "", "Dataset file (json, yaml or text; - for stdin)")
	flags.StringVar(&a.inputFormat, "input-format", "auto", "Dataset encoding: auto, json, yaml, text")
	flags.StringVarP(&a.values, "values", "n", "", `Inline values, e.g. "1,2,3"`)
	flags.StringVar(&a.kind, "kind", "", "Engine kind: "+kindNames()+" (default from config)")

	rootCmd.AddCommand(
		newReportCommand(a),
		newExportCommand(a),
		newVerifyCommand(a),
		newBenchCommand(a),
		newPlotCommand(a),
		newMCPCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	obsCfg, err := a.observabilityConfig(cmd)
	if err != nil {
		return err
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	a.providers = providers
	a.logger = providers.Logger

	metrics, err := observability.NewEngineMetrics(providers.Meter)
	if err != nil {
		return err
	}

	a.metrics = metrics

	a.logger.Debug("configuration loaded", "command", cmd.Name(), "kind", cfg.Engine.Kind)

	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) error {
	if a.providers.Shutdown == nil {
		return nil
	}

	shutdownErr := a.providers.Shutdown(context.Background())
	if shutdownErr != nil {
		a.logger.Warn("observability shutdown failed", "error", shutdownErr)
	}

	return nil
}

func (a *app) observabilityConfig(cmd *cobra.Command) (observability.Config, error) {
	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Get().Version
	obsCfg.OTLPEndpoint = a.cfg.Observability.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(a.cfg.Observability.OTLPHeaders)
	obsCfg.OTLPInsecure = a.cfg.Observability.OTLPInsecure
	obsCfg.LogJSON = a.cfg.Logging.Format == "json"
	obsCfg.LogWriter = cmd.ErrOrStderr()

	level, err := observability.ParseLogLevel(a.cfg.Logging.Level)
	if err != nil {
		return obsCfg, err
	}

	obsCfg.LogLevel = level

	switch {
	case a.debug:
		obsCfg.LogLevel = slog.LevelDebug
	case a.quiet:
		obsCfg.LogLevel = slog.LevelError
	}

	if cmd.Name() == mcpCommandName {
		obsCfg.Mode = observability.ModeMCP
		obsCfg.LogJSON = true
		obsCfg.Prometheus = a.diagnosticsAddress() != ""
	}

	return obsCfg, nil
}

func (a *app) diagnosticsAddress() string {
	if a.diagnosticsAddr != "" {
		return a.diagnosticsAddr
	}

	return a.cfg.Observability.DiagnosticsAddr
}

// engineKind resolves --kind, falling back to engine.kind from the config.
func (a *app) engineKind() (tally.Kind, error) {
	if a.kind == "" {
		return a.cfg.Engine.EngineKind(), nil
	}

	return tally.ParseKind(a.kind)
}

func kindNames() string {
	kinds := tally.Kinds()
	names := make([]string, len(kinds))

	for i, k := range kinds {
		names[i] = k.String()
	}

	return strings.Join(names, ", ")
}

// loadValues resolves the dataset: --values, then --input, then the demo set.
func (a *app) loadValues(cmd *cobra.Command) ([]int, error) {
	switch {
	case a.values != "":
		return input.ParseValues(a.values)
	case a.inputPath != "":
		maxSize, err := a.cfg.Input.MaxSizeBytes()
		if err != nil {
			return nil, err
		}

		format, err := input.ParseFormat(a.inputFormat)
		if err != nil {
			return nil, err
		}

		opts := input.Options{Format: format, MaxSize: maxSize, SchemaCheck: a.cfg.Input.SchemaCheck}

		if a.inputPath == input.StdinPath {
			return input.Read(cmd.InOrStdin(), opts)
		}

		return input.Load(a.inputPath, opts)
	default:
		a.logger.Debug("no input given, using demo dataset")

		return demoValues, nil
	}
}

// newEngine builds an engine over the resolved dataset.
func (a *app) newEngine(cmd *cobra.Command) (*tally.Engine, error) {
	kind, err := a.engineKind()
	if err != nil {
		return nil, err
	}

	values, err := a.loadValues(cmd)
	if err != nil {
		return nil, err
	}

	engine, err := tally.NewKind(kind, values, tally.WithObserver(a.metrics))
	if err != nil {
		return nil, err
	}

	a.logger.Debug("engine ready", "kind", kind, "values", len(values))

	return engine, nil
}
