package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/pkg/config"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

const testMaxSizeBytes = 16_000_000

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tally.yaml")

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultEngineKind, cfg.Engine.Kind)
	assert.Equal(t, tally.KindBasic, cfg.Engine.EngineKind())
	assert.Equal(t, config.DefaultInputMaxSize, cfg.Input.MaxSize)
	assert.True(t, cfg.Input.SchemaCheck)
	assert.Equal(t, config.DefaultExportFormat, cfg.Export.Format)
	assert.False(t, cfg.Export.Compress)
	assert.Equal(t, ".", cfg.Export.Directory)
	assert.Zero(t, cfg.Report.Width)
	assert.True(t, cfg.Report.ShowBenchmark)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Observability.OTLPEndpoint)

	size, err := cfg.Input.MaxSizeBytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(testMaxSizeBytes), size)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
engine:
  kind: optimized

input:
  max_size: "2KiB"
  schema_check: false

export:
  format: csv
  compress: true
  directory: /tmp/exports

report:
  width: 100
  no_color: true
  show_benchmark: false

logging:
  level: debug
  format: json

observability:
  otlp_endpoint: "localhost:4317"
  otlp_headers: "authorization=Bearer abc"
  otlp_insecure: true
  diagnostics_addr: "127.0.0.1:9464"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, tally.KindOptimized, cfg.Engine.EngineKind())
	assert.False(t, cfg.Input.SchemaCheck)
	assert.Equal(t, "csv", cfg.Export.Format)
	assert.True(t, cfg.Export.Compress)
	assert.Equal(t, "/tmp/exports", cfg.Export.Directory)
	assert.Equal(t, 100, cfg.Report.Width)
	assert.True(t, cfg.Report.NoColor)
	assert.False(t, cfg.Report.ShowBenchmark)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "localhost:4317", cfg.Observability.OTLPEndpoint)
	assert.Equal(t, "authorization=Bearer abc", cfg.Observability.OTLPHeaders)
	assert.True(t, cfg.Observability.OTLPInsecure)
	assert.Equal(t, "127.0.0.1:9464", cfg.Observability.DiagnosticsAddr)

	size, err := cfg.Input.MaxSizeBytes()
	require.NoError(t, err)
	assert.Equal(t, uint64(2048), size)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("TALLY_ENGINE_KIND", "optimized")
	t.Setenv("TALLY_EXPORT_FORMAT", "xml")
	t.Setenv("TALLY_LOGGING_LEVEL", "warn")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "optimized", cfg.Engine.Kind)
	assert.Equal(t, "xml", cfg.Export.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "unknown_kind", content: "engine:\n  kind: turbo\n", wantErr: config.ErrInvalidKind},
		{name: "unknown_format", content: "export:\n  format: yaml\n", wantErr: config.ErrInvalidFormat},
		{name: "unknown_level", content: "logging:\n  level: loud\n", wantErr: config.ErrInvalidLogLevel},
		{name: "unknown_log_format", content: "logging:\n  format: xml\n", wantErr: config.ErrInvalidLogFormat},
		{name: "bad_max_size", content: "input:\n  max_size: lots\n", wantErr: config.ErrInvalidMaxSize},
		{name: "negative_width", content: "report:\n  width: -1\n", wantErr: config.ErrInvalidWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
