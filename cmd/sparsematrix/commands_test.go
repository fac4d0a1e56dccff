package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sparse/config"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestPrintCommand(t *testing.T) {
	path := writeFile(t, "a.txt", "2 2\n1 2 9\n")
	out, _, err := execute(t, "", "print", path)
	require.NoError(t, err)
	require.Equal(t, "first (2x2):\n0 9\n0 0\n", out)
}

func TestBinaryCommands(t *testing.T) {
	a := writeFile(t, "a.txt", "1 2\n1 1 1\n1 2 2\n")
	b := writeFile(t, "b.txt", "1 2\n1 2 5\n")
	c := writeFile(t, "c.txt", "2 1\n1 1 3\n2 1 4\n")

	out, _, err := execute(t, "", "sum", a, b)
	require.NoError(t, err)
	require.Equal(t, "sum (1x2):\n1 5\n", out)

	out, _, err = execute(t, "", "add", a, b)
	require.NoError(t, err)
	require.Equal(t, "add (1x2):\n1 7\n", out)

	out, _, err = execute(t, "", "multiply", a, c)
	require.NoError(t, err)
	require.Equal(t, "multiply (1x1):\n11\n", out)

	_, _, err = execute(t, "", "multiply", a, b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)

	_, _, err = execute(t, "", "sum", a)
	require.Error(t, err)
}

func TestReplFromPipedStdin(t *testing.T) {
	first := writeFile(t, "first.txt", "2 2\n2 2 4\n")
	out, _, err := execute(t, "print\nuse second\nprint\nquit\n", "--first", first, "--rows", "1", "--cols", "3")
	require.NoError(t, err)
	require.Contains(t, out, "first (2x2):\n0 0\n0 4\n")
	require.Contains(t, out, "second (1x3):\n0 0 0\n")
	require.NotContains(t, out, "> ", "no prompt on piped stdin")
}

func TestReplSubcommandAndErrors(t *testing.T) {
	out, _, err := execute(t, "insert 9 9 1\nget 1 1\n", "repl")
	require.NoError(t, err)
	require.Contains(t, out, "error: Sparse.Insert(9,9)")
	require.Contains(t, out, "first(1, 1) = 0")

	_, _, err = execute(t, "", "repl", "--first", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigAndLogLevel(t *testing.T) {
	cfgPath := writeFile(t, "cfg.yaml", "log_level: info\nmatrix: {rows: 2, cols: 4}\n")

	out, _, err := execute(t, "", "config", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "log_level: info")
	require.Contains(t, out, "rows: 2")

	out, logs, err := execute(t, "dims\n", "--config", cfgPath, "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, out, "first  2x4")
	require.Contains(t, logs, "level=DEBUG")
	require.Contains(t, logs, "configuration loaded")

	_, _, err = execute(t, "", "--log-level", "chatty")
	require.ErrorContains(t, err, "--log-level")

	bad := writeFile(t, "bad.yaml", "matrix: {rows: 0}\n")
	_, _, err = execute(t, "", "config", "--config", bad)
	require.Error(t, err)
}

func TestReplRejectsNonPositiveShapeFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--rows", "0"},
		{"--cols", "-2"},
		{"repl", "--rows", "-1"},
	} {
		_, _, err := execute(t, "print\n", args...)
		require.ErrorIs(t, err, config.ErrInvalidConfig, "%v", args)
		require.ErrorContains(t, err, "--rows/--cols")
	}

	out, _, err := execute(t, "print\n", "--rows", "2")
	require.NoError(t, err)
	require.Contains(t, out, "first (2x3):\n")
}
