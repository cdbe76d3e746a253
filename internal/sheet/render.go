// Package sheet lays out quiz questions as printable text.
package sheet

import (
	"fmt"
	"strings"

	"github.com/lox/bjquiz/internal/quiz"
	"github.com/lox/bjquiz/internal/strategy"
)

const (
	title        = "Blackjack Basic Strategy Test"
	instructions = "Fill in the blanks with the corresponding basic strategy play.\n\n"

	nameWidth   = 25
	promptWidth = 13
	answerWidth = 7

	// CellsPerRow is how many questions share a printed line.
	CellsPerRow = 3

	cellGap  = "\t\t"
	rowBreak = "\n\n"
	blank    = '_'
)

// Sheet is one printable document: a quiz or its answer key.
type Sheet struct {
	Version       string
	Questions     []quiz.Question
	RevealAnswers bool
}

// Filename is the file the sheet is saved as: test_{version}.txt, or
// test_{version}_answers.txt for the answer key.
func (s Sheet) Filename() string {
	return Filename(s.Version, s.RevealAnswers)
}

// Kind names the document for console output.
func (s Sheet) Kind() string {
	if s.RevealAnswers {
		return "answer key"
	}
	return "test"
}

// Filename returns the file name for a version's quiz or answer key.
func Filename(version string, revealAnswers bool) string {
	if revealAnswers {
		return fmt.Sprintf("test_%s_answers.txt", version)
	}
	return fmt.Sprintf("test_%s.txt", version)
}

// Render formats the sheet. Output depends only on the sheet contents.
func Render(s Sheet) string {
	var b strings.Builder

	name := ""
	if s.RevealAnswers {
		name = "Answers"
	}
	fmt.Fprintf(&b, "%s\t\t\t\tName: %s\nVersion %s\n\n", title, center(name, nameWidth, blank), s.Version)
	b.WriteString(instructions)

	for i, q := range s.Questions {
		answer := ""
		if s.RevealAnswers {
			answer = q.Answer.String()
		}
		fmt.Fprintf(&b, "%-*s%s", promptWidth, q.Prompt()+":", center(answer, answerWidth, blank))
		if i%CellsPerRow == CellsPerRow-1 || i == len(s.Questions)-1 {
			b.WriteString(rowBreak)
		} else {
			b.WriteString(cellGap)
		}
	}

	b.WriteString(Legend())
	return b.String()
}

// Legend lists every action token. The three basic plays share the first line.
func Legend() string {
	var b strings.Builder
	b.WriteString("Legend:\n")
	for i, a := range strategy.Actions {
		if i > 0 {
			if i < CellsPerRow {
				b.WriteString(cellGap)
			} else {
				b.WriteString("\n")
			}
		}
		fmt.Fprintf(&b, "%s: %s", a.Description(), a)
	}
	return b.String()
}

// center pads s to width with fill, putting the odd extra character on the right.
func center(s string, width int, fill rune) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}
