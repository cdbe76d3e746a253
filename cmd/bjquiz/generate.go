package main

import (
	"errors"
	"os"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/bjquiz/internal/generate"
	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/sheet"
	"github.com/lox/bjquiz/internal/strategy"
)

// GenerateCmd writes a quiz and answer key for each version label.
type GenerateCmd struct {
	Size     int    `help:"Number of questions per version" default:"48" env:"BJQUIZ_SIZE"`
	Versions string `help:"Comma separated list of version names" default:"A" env:"BJQUIZ_VERSIONS"`
	OutDir   string `help:"Directory to write sheets to" default:"." type:"path" env:"BJQUIZ_OUT_DIR"`
	Seed     int64  `help:"Random seed for repeatable quizzes (0 = random)" env:"BJQUIZ_SEED"`
	Jobs     int    `help:"Number of sheets to render concurrently" default:"1" env:"BJQUIZ_JOBS"`
}

// Validate rejects bad sizes before anything touches the disk.
func (cmd *GenerateCmd) Validate() error {
	if err := quiz.BuildBank(strategy.Default()).CheckSize(cmd.Size); err != nil {
		return err
	}
	if cmd.Jobs < 1 {
		return errors.New("--jobs must be at least 1")
	}
	return nil
}

func (cmd *GenerateCmd) Run(g *Globals) error {
	logger, err := newLogger(g, os.Stderr)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext(logger)
	defer cancel()

	writer := sheet.NewWriter(cmd.OutDir, os.Stdout, newRenderer(g, os.Stdout))
	gen := generate.New(strategy.Default(), writer, logger, quartz.NewReal())

	_, err = gen.Run(ctx, generate.Options{
		Size:     cmd.Size,
		Versions: strings.Split(cmd.Versions, ","),
		Seed:     cmd.Seed,
		Jobs:     cmd.Jobs,
	})
	return err
}
