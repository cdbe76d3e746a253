package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("all attributes", func(t *testing.T) {
		cfg, err := Parse([]byte(`
size      = 60
versions  = ["A", "B"]
out_dir   = "sheets"
seed      = 99
jobs      = 2
log_level = "debug"
color     = "never"
`), "test.hcl")
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"size":      "60",
			"versions":  "A,B",
			"out-dir":   "sheets",
			"seed":      "99",
			"jobs":      "2",
			"log-level": "debug",
			"color":     "never",
		}, cfg.Values())
	})

	t.Run("unset attributes are absent", func(t *testing.T) {
		cfg, err := Parse([]byte(`size = 0`), "test.hcl")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"size": "0"}, cfg.Values())
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := Parse([]byte(`decks = 6`), "test.hcl")
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Parse([]byte(`size = `), "test.hcl")
		assert.Error(t, err)
	})
}

type testCLI struct {
	Config   kong.ConfigFlag
	Size     int    `default:"48" env:"BJQUIZ_TEST_SIZE"`
	Versions string `default:"A"`
	OutDir   string `default:"."`
}

func TestLoaderPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bjquiz.hcl")
	require.NoError(t, os.WriteFile(path, []byte("size = 12\nversions = [\"X\", \"Y\"]\n"), 0644))

	parse := func(t *testing.T, args ...string) testCLI {
		t.Helper()
		var cli testCLI
		parser, err := kong.New(&cli, kong.Configuration(Loader, path), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
		require.NoError(t, err)
		_, err = parser.Parse(args)
		require.NoError(t, err)
		return cli
	}

	cli := parse(t)
	assert.Equal(t, 12, cli.Size)
	assert.Equal(t, "X,Y", cli.Versions)
	assert.Equal(t, ".", cli.OutDir)

	cli = parse(t, "--size", "3")
	assert.Equal(t, 3, cli.Size)
	assert.Equal(t, "X,Y", cli.Versions)

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("BJQUIZ_TEST_SIZE", "7")

		cli := parse(t)
		assert.Equal(t, 7, cli.Size)
		assert.Equal(t, "X,Y", cli.Versions)
	})

	t.Run("flag beats env", func(t *testing.T) {
		t.Setenv("BJQUIZ_TEST_SIZE", "7")

		cli := parse(t, "--size", "3")
		assert.Equal(t, 3, cli.Size)
	})
}

func TestLoaderReportsErrors(t *testing.T) {
	_, err := Loader(strings.NewReader(`versions = 3 +`))
	assert.Error(t, err)
}
