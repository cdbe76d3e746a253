// Package strategy holds the fixed blackjack basic-strategy chart.
//
// The chart covers 4-8 decks, dealer hits soft 17, double after split allowed.
// Source: https://wizardofodds.com/games/blackjack/strategy/4-decks/
package strategy

import (
	"errors"
	"fmt"
)

// ErrDuplicateHand is returned when a table lists the same hand twice.
var ErrDuplicateHand = errors.New("duplicate hand")

// Rules describes the ruleset the default chart was built for.
const Rules = "4-8 decks, dealer hits soft 17, double after split"

// HandKey identifies a player hand: a hard total ("12"), a soft hand ("A,7")
// or a pair ("8,8").
type HandKey string

// HandKind is the chart section a hand belongs to.
type HandKind uint8

const (
	Hard HandKind = iota
	Soft
	Pair
)

func (k HandKind) String() string {
	switch k {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// Entry is one chart row: the play for a hand against each upcard, 2..10 then A.
type Entry struct {
	Hand    HandKey
	Kind    HandKind
	Actions [NumUpcards]Action
}

// Action returns the play against the given upcard.
func (e Entry) Action(up Upcard) Action {
	return e.Actions[up.Index()]
}

// Table is an ordered, read-only strategy chart.
type Table struct {
	entries []Entry
	index   map[HandKey]int
}

// NewTable builds a table from entries in the given order.
func NewTable(entries ...Entry) (Table, error) {
	t := Table{
		entries: make([]Entry, len(entries)),
		index:   make(map[HandKey]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := t.index[e.Hand]; ok {
			return Table{}, fmt.Errorf("%w: %s", ErrDuplicateHand, e.Hand)
		}
		t.entries[i] = e
		t.index[e.Hand] = i
	}
	return t, nil
}

// Len returns the number of hands in the table.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table rows in chart order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Lookup returns the play for hand against up.
func (t Table) Lookup(hand HandKey, up Upcard) (Action, bool) {
	i, ok := t.index[hand]
	if !ok || !up.Valid() {
		return 0, false
	}
	return t.entries[i].Action(up), true
}

// Default returns the built-in chart.
func Default() Table {
	return defaultTable
}

var defaultTable = mustTable(defaultEntries...)

func mustTable(entries ...Entry) Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	h  = Hit
	s  = Stand
	p  = Split
	dh = DoubleElseHit
	ds = DoubleElseStand
	rh = SurrenderElseHit
	rs = SurrenderElseStand
	rp = SurrenderElseSplit
)

var defaultEntries = []Entry{
	{"8", Hard, [NumUpcards]Action{h, h, h, h, h, h, h, h, h, h}},
	{"9", Hard, [NumUpcards]Action{h, dh, dh, dh, dh, h, h, h, h, h}},
	{"10", Hard, [NumUpcards]Action{dh, dh, dh, dh, dh, dh, dh, dh, h, h}},
	{"11", Hard, [NumUpcards]Action{dh, dh, dh, dh, dh, dh, dh, dh, dh, dh}},
	{"12", Hard, [NumUpcards]Action{h, h, s, s, s, h, h, h, h, h}},
	{"13", Hard, [NumUpcards]Action{s, s, s, s, s, h, h, h, h, h}},
	{"14", Hard, [NumUpcards]Action{s, s, s, s, s, h, h, h, h, h}},
	{"15", Hard, [NumUpcards]Action{s, s, s, s, s, h, h, h, rh, rh}},
	{"16", Hard, [NumUpcards]Action{s, s, s, s, s, h, h, rh, rh, rh}},
	{"17", Hard, [NumUpcards]Action{s, s, s, s, s, s, s, s, s, rs}},
	{"18", Hard, [NumUpcards]Action{s, s, s, s, s, s, s, s, s, s}},

	{"A,2", Soft, [NumUpcards]Action{h, h, h, dh, dh, h, h, h, h, h}},
	{"A,3", Soft, [NumUpcards]Action{h, h, h, dh, dh, h, h, h, h, h}},
	{"A,4", Soft, [NumUpcards]Action{h, h, dh, dh, dh, h, h, h, h, h}},
	{"A,5", Soft, [NumUpcards]Action{h, h, dh, dh, dh, h, h, h, h, h}},
	{"A,6", Soft, [NumUpcards]Action{h, dh, dh, dh, dh, h, h, h, h, h}},
	{"A,7", Soft, [NumUpcards]Action{ds, ds, ds, ds, ds, s, s, h, h, h}},
	{"A,8", Soft, [NumUpcards]Action{s, s, s, s, ds, s, s, s, s, s}},
	{"A,9", Soft, [NumUpcards]Action{s, s, s, s, s, s, s, s, s, s}},

	{"2,2", Pair, [NumUpcards]Action{p, p, p, p, p, p, h, h, h, h}},
	{"3,3", Pair, [NumUpcards]Action{p, p, p, p, p, p, h, h, h, h}},
	{"4,4", Pair, [NumUpcards]Action{h, h, h, p, p, h, h, h, h, h}},
	{"5,5", Pair, [NumUpcards]Action{dh, dh, dh, dh, dh, dh, dh, dh, h, h}},
	{"6,6", Pair, [NumUpcards]Action{p, p, p, p, p, h, h, h, h, h}},
	{"7,7", Pair, [NumUpcards]Action{p, p, p, p, p, p, h, h, h, h}},
	{"8,8", Pair, [NumUpcards]Action{p, p, p, p, p, p, p, p, p, rp}},
	{"9,9", Pair, [NumUpcards]Action{p, p, p, p, p, s, p, p, s, s}},
	{"10,10", Pair, [NumUpcards]Action{s, s, s, s, s, s, s, s, s, s}},
	{"A,A", Pair, [NumUpcards]Action{p, p, p, p, p, p, p, p, p, p}},
}
