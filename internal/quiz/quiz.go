// Package quiz turns the strategy chart into individual questions and draws
// random quizzes from them.
package quiz

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/bjquiz/internal/randutil"
	"github.com/lox/bjquiz/internal/strategy"
)

// ErrInvalidSize is returned when a quiz asks for fewer than zero questions or
// more than the bank holds.
var ErrInvalidSize = errors.New("invalid quiz size")

// Question is a single hand against a single dealer upcard.
type Question struct {
	Hand   strategy.HandKey
	Upcard strategy.Upcard
	Answer strategy.Action
}

// Prompt renders the question as it appears on a sheet, e.g. "A,7 vs 9".
func (q Question) Prompt() string {
	return fmt.Sprintf("%s vs %s", q.Hand, q.Upcard)
}

// Bank is every question the chart can produce, in chart order.
type Bank []Question

// BuildBank expands the table row by row, then upcard 2..10, A. The result is
// the same on every call.
func BuildBank(table strategy.Table) Bank {
	entries := table.Entries()
	bank := make(Bank, 0, len(entries)*strategy.NumUpcards)
	for _, e := range entries {
		for i, a := range e.Actions {
			bank = append(bank, Question{
				Hand:   e.Hand,
				Upcard: strategy.UpcardAt(i),
				Answer: a,
			})
		}
	}
	return bank
}

// CheckSize validates n against the bank without drawing anything.
func (b Bank) CheckSize(n int) error {
	if n < 0 || n > len(b) {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidSize, n, len(b))
	}
	return nil
}

// Sample draws n distinct questions uniformly without replacement, in random order.
func Sample(rng *rand.Rand, bank Bank, n int) ([]Question, error) {
	if err := bank.CheckSize(n); err != nil {
		return nil, err
	}
	picked := randutil.Pick(rng, len(bank), n)
	out := make([]Question, n)
	for i, idx := range picked {
		out[i] = bank[idx]
	}
	return out, nil
}
