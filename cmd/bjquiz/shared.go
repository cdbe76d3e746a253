package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// colorProfile maps the --color flag to a terminal profile for w.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case "always":
		return termenv.TrueColor
	case "never":
		return termenv.Ascii
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// newLogger builds the stderr logger. Timestamps are only shown when debugging.
func newLogger(g *Globals, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
		TimeFormat:      "15:04:05",
	})
	logger.SetColorProfile(colorProfile(g.Color, w))
	return logger, nil
}

// newRenderer returns a lipgloss renderer for console output on w.
func newRenderer(g *Globals, w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(g.Color, w))
	return r
}

// signalContext is cancelled on interrupt so a run stops between files.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Warn("Received signal, stopping", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
