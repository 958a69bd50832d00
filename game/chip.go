package game

// Chip is the occupancy of a single board cell.
type Chip int

const (
	None Chip = iota
	Black
	White
)

// Opponent returns the other player's color. None has no opponent.
func (c Chip) Opponent() Chip {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

// String returns the single letter used in the board text form.
func (c Chip) String() string {
	switch c {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		return "."
	}
}

// Name returns the player's display name.
func (c Chip) Name() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

func parseChip(r rune) (Chip, bool) {
	switch r {
	case 'b', 'B':
		return Black, true
	case 'w', 'W':
		return White, true
	case '.':
		return None, true
	default:
		return None, false
	}
}
