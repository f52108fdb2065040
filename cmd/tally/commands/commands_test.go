package commands_test

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/cmd/tally/commands"
	"github.com/Sumatoshi-tech/tally/pkg/sink"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

func TestReportCommand(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "report", "--no-color", "--no-benchmark", "--width", "80")

	require.NoError(t, err)
	assert.Contains(t, res.stdout, "FREQUENCY ANALYSIS")
	assert.Contains(t, res.stdout, "Four")
	assert.Contains(t, res.stdout, "Eight")
	assert.Contains(t, res.stdout, "2.2464")
	assert.NotContains(t, res.stdout, "\x1b[")
}

func TestReportCommand_WithBenchmark(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "report", "--no-color", "--values", "1 1 2")

	require.NoError(t, err)

	for _, method := range tally.Methods() {
		assert.Contains(t, res.stdout, string(method))
	}
}

func TestExportCommand_Stdout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		prefix string
	}{
		{format: "csv", prefix: "Number,Count\n\"One\",2\n\"Two\",1\n"},
		{format: "array", prefix: "{Counts:[{Name:One Value:1 Count:2}"},
		{format: "json", prefix: "{\n  \"counts\": {\n    \"One\": 2,"},
		{format: "XML", prefix: "<?xml"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			res, err := execute(t, "", "export", "--values", "1,1,2", "--format", tt.format)

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.stdout, tt.prefix), res.stdout)
		})
	}
}

func TestExportCommand_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "export", "--format", "yaml")

	require.ErrorIs(t, err, tally.ErrUnsupportedFormat)
	assert.Equal(t, `unsupported format: "yaml"`, err.Error())
}

func TestExportCommand_OutputFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "counts.json")

	res, err := execute(t, "", "export", "--values", "5,5,7", "--output", path)

	require.NoError(t, err)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Counts     map[string]int   `json:"counts"`
		Statistics tally.Statistics `json:"statistics"`
	}

	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]int{"Five": 2, "Seven": 1}, doc.Counts)
	assert.Equal(t, 3, doc.Statistics.TotalElements)
}

func TestExportCommand_NamedCompressed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "tally.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("export:\n  directory: "+dir+"\n  format: csv\n"), 0o600))

	_, err := execute(t, "", "--config", configPath, "export", "--values", "3", "--name", "run", "--compress")
	require.NoError(t, err)

	rc, err := sink.Open(filepath.Join(dir, "run.csv"+sink.CompressedExt))
	require.NoError(t, err)

	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Number,Count\n\"Three\",1\n", string(data))
}

func TestVerifyCommand(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "verify", "--no-color", "--kind", "optimized")

	require.NoError(t, err)
	assert.Contains(t, res.stdout, "✓ consistent: 10 values, 5 distinct")
}

func TestBenchCommand(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "bench", "--runs", "2", "--values", "4,4,9")

	require.NoError(t, err)

	for _, method := range tally.Methods() {
		assert.Contains(t, res.stdout, method.Label(tally.KindBasic))
	}

	assert.Contains(t, res.stdout, "3 values, best of 2 runs")

	res, err = execute(t, "", "bench", "--runs", "1", "--values", "4,4,9", "--kind", "optimized")

	require.NoError(t, err)
	assert.Contains(t, res.stdout, "direct (optimized)")
}

func TestBenchCommand_InvalidRuns(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "bench", "--runs", "0")

	require.ErrorIs(t, err, commands.ErrInvalidRuns)
}

func TestPlotCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chart.html")

	_, err := execute(t, "", "plot", "--output", path, "--title", "Dice", "--theme", "dark")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
	assert.Contains(t, string(data), "Dice")
}

func TestPlotCommand_UnknownTheme(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "plot", "--output", "-", "--theme", "neon")

	require.ErrorIs(t, err, commands.ErrUnknownTheme)
}

func TestMCPCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd, _, err := commands.NewRootCommand().Find([]string{"mcp"})

	require.NoError(t, err)
	assert.Equal(t, "mcp", cmd.Name())
	assert.NotEmpty(t, cmd.Long)

	flag := cmd.Flags().Lookup("diagnostics-addr")
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
}
