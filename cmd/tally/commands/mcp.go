package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tally/pkg/mcp"
	"github.com/Sumatoshi-tech/tally/pkg/observability"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const mcpCommandName = "mcp"

type mcpCommand struct {
	*app
}

func newMCPCommand(a *app) *cobra.Command {
	mc := &mcpCommand{app: a}

	cmd := &cobra.Command{
		Use:   mcpCommandName,
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes tally as tools that AI agents can discover and invoke:
  - tally_counts: occurrences of each value plus the named view
  - tally_statistics: totals, most/least frequent values, entropy
  - tally_export: array, json, xml or csv payload`,
		Args: cobra.NoArgs,
		RunE: mc.run,
	}

	cmd.Flags().StringVar(&a.diagnosticsAddr, "diagnostics-addr", "",
		"Serve /healthz, /readyz and /metrics on host:port (default from config)")

	return cmd
}

func (mc *mcpCommand) run(cmd *cobra.Command, _ []string) error {
	red, err := observability.NewREDMetrics(mc.providers.Meter)
	if err != nil {
		return err
	}

	kind, err := mc.engineKind()
	if err != nil {
		return err
	}

	if addr := mc.diagnosticsAddress(); addr != "" {
		diag, diagErr := observability.NewDiagnosticsServer(addr, mc.providers.Tracer, mc.providers.MetricsHandler,
			enginesAgree(kind))
		if diagErr != nil {
			return diagErr
		}

		defer func() {
			closeErr := diag.Close()
			if closeErr != nil {
				mc.logger.Warn("diagnostics server close failed", "error", closeErr)
			}
		}()

		mc.logger.Info("diagnostics listening", "addr", diag.Addr())
	}

	srv := mcp.NewServer(mcp.ServerDeps{
		Logger:   mc.logger,
		Metrics:  red,
		Tracer:   mc.providers.Tracer,
		Observer: mc.metrics,
		Kind:     kind,
	})

	mc.logger.Info("mcp server starting", "kind", kind, "tools", srv.ListToolNames())

	return srv.Run(cmd.Context())
}

// enginesAgree reports ready while the counting methods of kind agree on the
// demo dataset.
func enginesAgree(kind tally.Kind) observability.ReadyCheck {
	return func(context.Context) error {
		engine, err := tally.NewKind(kind, demoValues)
		if err != nil {
			return err
		}

		return engine.Verify()
	}
}
