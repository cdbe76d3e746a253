// Package generate produces quiz sheets and answer keys for a list of versions.
package generate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/randutil"
	"github.com/lox/bjquiz/internal/sheet"
	"github.com/lox/bjquiz/internal/strategy"
)

// Options controls a generation run.
type Options struct {
	// Size is the number of questions on every sheet.
	Size int
	// Versions are the labels to produce, in order. Repeats overwrite earlier files.
	Versions []string
	// Seed makes the run repeatable; 0 draws a fresh one.
	Seed int64
	// Jobs bounds how many sheets are rendered at once.
	Jobs int
}

// Result describes a completed run.
type Result struct {
	Seed  int64
	Files []string
}

// Generator draws quizzes from a strategy table and writes them out.
type Generator struct {
	bank   quiz.Bank
	writer *sheet.Writer
	logger *log.Logger
	clock  quartz.Clock
}

// New returns a Generator for table that saves sheets through writer.
func New(table strategy.Table, writer *sheet.Writer, logger *log.Logger, clock quartz.Clock) *Generator {
	return &Generator{
		bank:   quiz.BuildBank(table),
		writer: writer,
		logger: logger.WithPrefix("generate"),
		clock:  clock,
	}
}

// Run produces a quiz and its answer key for every version. The size is
// checked before anything is written. Files written before a failure are kept.
func (g *Generator) Run(ctx context.Context, opts Options) (*Result, error) {
	start := g.clock.Now()

	if err := g.bank.CheckSize(opts.Size); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		var err error
		if seed, err = randutil.NewSeed(); err != nil {
			return nil, err
		}
	}
	g.logger.Info("Generating quizzes", "versions", len(opts.Versions), "size", opts.Size, "seed", seed)

	sheets, err := g.plan(seed, opts)
	if err != nil {
		return nil, err
	}

	texts, err := render(ctx, sheets, opts.Jobs)
	if err != nil {
		return nil, err
	}

	res := &Result{Seed: seed, Files: make([]string, 0, len(sheets))}
	for i, s := range sheets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path, err := g.writer.WriteRendered(s, texts[i])
		if err != nil {
			return res, err
		}
		g.logger.Debug("Wrote sheet", "version", s.Version, "kind", s.Kind(), "path", path)
		res.Files = append(res.Files, path)
	}

	g.logger.Info("Finished", "files", len(res.Files), "elapsed", g.clock.Since(start))
	return res, nil
}

// plan draws one sample per version, in order, and pairs it with its answer key.
func (g *Generator) plan(seed int64, opts Options) ([]sheet.Sheet, error) {
	rng := randutil.New(seed)
	sheets := make([]sheet.Sheet, 0, 2*len(opts.Versions))
	for _, version := range opts.Versions {
		questions, err := quiz.Sample(rng, g.bank, opts.Size)
		if err != nil {
			return nil, fmt.Errorf("version %q: %w", version, err)
		}
		sheets = append(sheets,
			sheet.Sheet{Version: version, Questions: questions},
			sheet.Sheet{Version: version, Questions: questions, RevealAnswers: true},
		)
	}
	return sheets, nil
}

func render(ctx context.Context, sheets []sheet.Sheet, jobs int) ([]string, error) {
	if jobs < 1 {
		jobs = 1
	}
	texts := make([]string, len(sheets))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i := range sheets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			texts[i] = sheet.Render(sheets[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}
