package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/automata/pkg/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestDFASession(t *testing.T) {
	out, err := execute(t, "000001110000011100000\n01\n0012\n\nignored\n", "dfa")
	require.NoError(t, err)

	assert.Equal(t, "Accepted\nRejected\nUnknown symbol found. Rejected\n", out)
}

func TestDFASession_EOF(t *testing.T) {
	out, err := execute(t, "00000\n111", "dfa")
	require.NoError(t, err)

	assert.Equal(t, "Accepted\nAccepted\n", out)
}

func TestDFASession_ModuliFromEnv(t *testing.T) {
	t.Setenv("AUTOMATA_DFA_ZERO_MODULUS", "2")
	t.Setenv("AUTOMATA_DFA_ONE_MODULUS", "1")

	out, err := execute(t, "00\n000\n", "dfa")
	require.NoError(t, err)

	assert.Equal(t, "Accepted\nRejected\n", out)
}

func TestENFASession(t *testing.T) {
	out, err := execute(t, "\na\nb\nba\nbx\nq\nab\n", "enfa")
	require.NoError(t, err)

	assert.Equal(t, "Accepted\nAccepted\nRejected\nAccepted\nRejected\n", out)
}

func TestENFASession_JSON(t *testing.T) {
	out, err := execute(t, "ba\nq\n", "enfa", "--json")
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &line))
	assert.Equal(t, "epsilon-ab", line["automaton"])
	assert.Equal(t, "Accepted", line["message"])
	assert.Equal(t, true, line["accepted"])
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "", "check", "mod-counter", "000", "00000", "0z")
	require.NoError(t, err)

	assert.Equal(t, "Rejected\nAccepted\nUnknown symbol found. Rejected\n", out)
}

func TestCheck_Record(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")

	out, err := execute(t, "", "check", "--record", path, "epsilon-ab", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "Accepted\nRejected\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first runner.Line
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "a", first.Input)
	assert.True(t, first.Accepted)
}

func TestCheck_List(t *testing.T) {
	out, err := execute(t, "", "check", "--list")
	require.NoError(t, err)

	assert.Contains(t, out, "epsilon-ab")
	assert.Contains(t, out, "mod-counter")
}

func TestCheck_Errors(t *testing.T) {
	_, err := execute(t, "", "check", "nope", "0")
	assert.Error(t, err)

	_, err = execute(t, "", "check", "mod-counter")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "dfa", "--log-level", "loud")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "automata version "))
}
