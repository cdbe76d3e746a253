package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseCLI runs args through the real command tree without touching any
// config file outside the test.
func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()

	var cli CLI
	opts := append(options(), kong.Exit(func(code int) { t.Fatalf("unexpected exit %d", code) }))
	parser, err := kong.New(&cli, opts...)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	return &cli, ctx, err
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestCLIRejectsOversizedQuiz(t *testing.T) {
	dir := t.TempDir()

	_, _, err := parseCLI(t, "--size=301", "--versions=A,B", "--out-dir="+dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quiz size")
	assert.Empty(t, dirEntries(t, dir))
}

func TestCLIDefaults(t *testing.T) {
	cli, ctx, err := parseCLI(t)
	require.NoError(t, err)

	assert.Equal(t, "generate", ctx.Command())
	assert.Equal(t, 48, cli.Generate.Size)
	assert.Equal(t, "A", cli.Generate.Versions)
	assert.Equal(t, 1, cli.Generate.Jobs)
	assert.Equal(t, "info", cli.LogLevel)
}

func TestCLIGenerate(t *testing.T) {
	dir := t.TempDir()

	cli, ctx, err := parseCLI(t,
		"--size=10", "--versions=A,B", "--seed=9", "--jobs=2",
		"--out-dir="+dir, "--log-level=error", "--color=never")
	require.NoError(t, err)
	require.NoError(t, ctx.Run(&cli.Globals))

	assert.ElementsMatch(t, []string{
		"test_A.txt", "test_A_answers.txt",
		"test_B.txt", "test_B_answers.txt",
	}, dirEntries(t, dir))

	data, err := os.ReadFile(filepath.Join(dir, "test_B_answers.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Version B\n")
}
