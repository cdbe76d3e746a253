package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/bjquiz/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   kong.ConfigFlag  `help:"Load defaults from an HCL config file" env:"BJQUIZ_CONFIG"`
	LogLevel string           `help:"Log level (${enum})" default:"info" enum:"debug,info,warn,error" env:"BJQUIZ_LOG_LEVEL"`
	Color    string           `help:"Colorize output (${enum})" default:"auto" enum:"auto,always,never" env:"BJQUIZ_COLOR"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Write quiz sheets and answer keys (default)"`
	Chart    ChartCmd    `cmd:"" help:"Print the basic strategy chart"`
}

// defaultConfigPaths are searched for an HCL config file, first match wins.
var defaultConfigPaths = []string{"bjquiz.hcl", "~/.config/bjquiz/config.hcl"}

func options(configPaths ...string) []kong.Option {
	return []kong.Option{
		kong.Name("bjquiz"),
		kong.Description("Generate blackjack basic strategy quizzes and answer keys"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Configuration(config.Loader, configPaths...),
		kong.Vars{
			"version": version,
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options(defaultConfigPaths...)...)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
