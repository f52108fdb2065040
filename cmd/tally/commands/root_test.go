package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tally/cmd/tally/commands"
	"github.com/Sumatoshi-tech/tally/pkg/input"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

type result struct {
	stdout string
	stderr string
}

// execute runs the root command with args and stdin.
func execute(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := commands.NewRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{"report", "export", "verify", "bench", "plot", "mcp", "version"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "debug", "quiet", "input", "input-format", "values", "kind"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}

	assert.Contains(t, cmd.PersistentFlags().Lookup("kind").Usage, "basic, optimized")

	export, _, err := cmd.Find([]string{"export"})
	require.NoError(t, err)
	assert.Contains(t, export.Flags().Lookup("format").Usage, "array, json, xml, csv")
}

func TestRootCommand_InvalidValues(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "export", "--values", "1,x,3")

	require.Error(t, err)
	require.ErrorIs(t, err, tally.ErrValidation)
	assert.Contains(t, err.Error(), "invalid value at index 1: x")
}

func TestRootCommand_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "verify", "--kind", "quantum")

	require.ErrorIs(t, err, tally.ErrUnknownKind)
}

func TestRootCommand_Stdin(t *testing.T) {
	t.Parallel()

	res, err := execute(t, `{"values": [2, 2, 11]}`, "export", "--input", "-", "--format", "csv")

	require.NoError(t, err)
	assert.Equal(t, "Number,Count\n\"Two\",2\n\"Number_11\",1\n", res.stdout)
}

func TestRootCommand_InputFormat(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "- 4\n- 4\n- 9\n", "export", "-i", "-", "--input-format", "YAML", "--format", "csv")

	require.NoError(t, err)
	assert.Equal(t, "Number,Count\n\"Four\",2\n\"Nine\",1\n", res.stdout)

	_, err = execute(t, "- 4\n", "export", "-i", "-", "--input-format", "json")
	require.ErrorIs(t, err, input.ErrParse)

	_, err = execute(t, "4", "export", "-i", "-", "--input-format", "xml")
	require.ErrorIs(t, err, input.ErrUnknownFormat)
}

func TestRootCommand_DebugLogsToStderr(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "verify", "--debug")

	require.NoError(t, err)
	assert.Contains(t, res.stderr, "using demo dataset")
	assert.NotContains(t, res.stdout, "demo dataset")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	res, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.stdout, "tally "), res.stdout)

	res, err = execute(t, "", "version", "--json")

	require.NoError(t, err)
	assert.Contains(t, res.stdout, `"commit"`)
}
