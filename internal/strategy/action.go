package strategy

// Action is the basic-strategy play for a hand against an upcard.
type Action uint8

const (
	// Hit takes another card
	Hit Action = iota
	// Stand keeps the current total
	Stand
	// Split separates a pair into two hands
	Split
	// DoubleElseHit doubles if allowed, otherwise hits
	DoubleElseHit
	// DoubleElseStand doubles if allowed, otherwise stands
	DoubleElseStand
	// SurrenderElseHit surrenders if allowed, otherwise hits
	SurrenderElseHit
	// SurrenderElseStand surrenders if allowed, otherwise stands
	SurrenderElseStand
	// SurrenderElseSplit surrenders if allowed, otherwise splits
	SurrenderElseSplit
)

// Actions lists every Action in legend order.
var Actions = []Action{
	Hit,
	Stand,
	Split,
	DoubleElseHit,
	DoubleElseStand,
	SurrenderElseHit,
	SurrenderElseStand,
	SurrenderElseSplit,
}

// String returns the chart token for the action (H, S, P, Dh, ...).
func (a Action) String() string {
	switch a {
	case Hit:
		return "H"
	case Stand:
		return "S"
	case Split:
		return "P"
	case DoubleElseHit:
		return "Dh"
	case DoubleElseStand:
		return "Ds"
	case SurrenderElseHit:
		return "Rh"
	case SurrenderElseStand:
		return "Rs"
	case SurrenderElseSplit:
		return "Rp"
	default:
		return "?"
	}
}

// Description returns the legend wording for the action.
func (a Action) Description() string {
	switch a {
	case Hit:
		return "Hit"
	case Stand:
		return "Stand"
	case Split:
		return "Split"
	case DoubleElseHit:
		return "Double if allowed, otherwise hit"
	case DoubleElseStand:
		return "Double if allowed, otherwise stand"
	case SurrenderElseHit:
		return "Surrender if allowed, otherwise hit"
	case SurrenderElseStand:
		return "Surrender if allowed, otherwise stand"
	case SurrenderElseSplit:
		return "Surrender if allowed, otherwise split"
	default:
		return "Unknown"
	}
}
