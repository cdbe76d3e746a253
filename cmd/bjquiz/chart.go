package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/lox/bjquiz/internal/sheet"
	"github.com/lox/bjquiz/internal/strategy"
)

// ChartCmd prints the whole strategy chart, handy for checking answer keys.
type ChartCmd struct {
	Kind string `help:"Only show one section of the chart (${enum})" default:"all" enum:"all,hard,soft,pair"`
}

func (cmd *ChartCmd) Run(g *Globals) error {
	return writeChart(os.Stdout, newRenderer(g, os.Stdout), strategy.Default(), cmd.Kind)
}

var actionColors = map[strategy.Action]lipgloss.Color{
	strategy.Hit:                lipgloss.Color("#FAFAFA"),
	strategy.Stand:              lipgloss.Color("#F25D94"),
	strategy.Split:              lipgloss.Color("#43BF6D"),
	strategy.DoubleElseHit:      lipgloss.Color("#7D56F4"),
	strategy.DoubleElseStand:    lipgloss.Color("#7D56F4"),
	strategy.SurrenderElseHit:   lipgloss.Color("#FFB454"),
	strategy.SurrenderElseStand: lipgloss.Color("#FFB454"),
	strategy.SurrenderElseSplit: lipgloss.Color("#FFB454"),
}

func writeChart(w io.Writer, r *lipgloss.Renderer, table strategy.Table, kind string) error {
	headers := []string{"Hand"}
	for _, up := range strategy.Upcards() {
		headers = append(headers, up.String())
	}

	var entries []strategy.Entry
	for _, e := range table.Entries() {
		if kind == "all" || kind == e.Kind.String() {
			entries = append(entries, e)
		}
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...)
	for _, e := range entries {
		row := []string{string(e.Hand)}
		for _, a := range e.Actions {
			row = append(row, a.String())
		}
		t.Row(row...)
	}

	base := r.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == ltable.HeaderRow:
			return base.Bold(true)
		case col == 0:
			return base.Bold(true).Align(lipgloss.Right)
		case row < len(entries):
			return base.Foreground(actionColors[entries[row].Actions[col-1]])
		default:
			return base
		}
	})

	title := r.NewStyle().Bold(true).Render("Basic strategy") + " (" + strategy.Rules + ")"
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n", title, t.String(), sheet.Legend())
	return err
}
