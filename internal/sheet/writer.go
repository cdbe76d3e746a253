package sheet

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bjquiz/internal/fileutil"
)

// Writer saves sheets into a directory and reports each file on a console.
type Writer struct {
	dir       string
	console   io.Writer
	pathStyle lipgloss.Style
}

// NewWriter returns a Writer for dir. Confirmations go to console, styled with
// r; a nil r picks a renderer for console.
func NewWriter(dir string, console io.Writer, r *lipgloss.Renderer) *Writer {
	if r == nil {
		r = lipgloss.NewRenderer(console)
	}
	return &Writer{
		dir:       dir,
		console:   console,
		pathStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
	}
}

// Path returns where the sheet will be written.
func (w *Writer) Path(s Sheet) string {
	return filepath.Join(w.dir, s.Filename())
}

// WriteRendered saves text already produced by Render for s. An existing file
// with the same name is replaced.
func (w *Writer) WriteRendered(s Sheet, text string) (string, error) {
	path := w.Path(s)
	err := fileutil.WriteAtomic(path, 0644, func(out io.Writer) error {
		_, err := io.WriteString(out, text)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("writing %s for version %q: %w", s.Kind(), s.Version, err)
	}
	fmt.Fprintf(w.console, "Wrote %s to %s\n", s.Kind(), w.pathStyle.Render(path))
	return path, nil
}
