package sheet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/strategy"
)

func TestWriterWrite(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	w := NewWriter(dir, &console, nil)

	qs := []quiz.Question{{Hand: "18", Upcard: 2, Answer: strategy.Stand}}

	path, err := write(w, Sheet{Version: "A", Questions: qs})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_A.txt"), path)

	path, err = write(w, Sheet{Version: "A", Questions: qs, RevealAnswers: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_A_answers.txt"), path)

	data, err := os.ReadFile(filepath.Join(dir, "test_A_answers.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "18 vs 2:     ___S___")

	assert.Equal(t,
		"Wrote test to "+filepath.Join(dir, "test_A.txt")+"\n"+
			"Wrote answer key to "+filepath.Join(dir, "test_A_answers.txt")+"\n",
		console.String())
}

func TestWriterLastWriteWins(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, &bytes.Buffer{}, nil)

	_, err := write(w, Sheet{Version: "A", Questions: []quiz.Question{{Hand: "8", Upcard: 2}}})
	require.NoError(t, err)
	_, err = write(w, Sheet{Version: "A", Questions: []quiz.Question{{Hand: "9", Upcard: 3}}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "test_A.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "9 vs 3:")
	assert.NotContains(t, string(data), "8 vs 2:")
}

func TestWriterUnwritableDir(t *testing.T) {
	var console bytes.Buffer
	w := NewWriter(filepath.Join(t.TempDir(), "missing"), &console, nil)

	_, err := write(w, Sheet{Version: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `version "A"`)
	assert.Empty(t, console.String())
}

func write(w *Writer, s Sheet) (string, error) {
	return w.WriteRendered(s, Render(s))
}
