package strategy

import "strconv"

// Upcard is the dealer's visible card value, 2 through 10 or 11 for an ace.
type Upcard uint8

const (
	// MinUpcard is the lowest dealer upcard
	MinUpcard Upcard = 2
	// Ace is the dealer ace, counted as 11
	Ace Upcard = 11
)

// NumUpcards is the number of distinct upcards, and the width of every table row.
const NumUpcards = int(Ace-MinUpcard) + 1

// Upcards returns every upcard in chart column order: 2..10 then A.
func Upcards() []Upcard {
	ups := make([]Upcard, 0, NumUpcards)
	for u := MinUpcard; u <= Ace; u++ {
		ups = append(ups, u)
	}
	return ups
}

// UpcardAt returns the upcard for chart column i (0 = 2, 9 = A).
func UpcardAt(i int) Upcard {
	return MinUpcard + Upcard(i)
}

// Index returns the chart column of the upcard.
func (u Upcard) Index() int {
	return int(u - MinUpcard)
}

// Valid reports whether u is a dealer upcard.
func (u Upcard) Valid() bool {
	return u >= MinUpcard && u <= Ace
}

func (u Upcard) String() string {
	if u == Ace {
		return "A"
	}
	return strconv.Itoa(int(u))
}
