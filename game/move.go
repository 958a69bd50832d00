package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a board coordinate.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Move represents a move in the game. During the first two turns From == To
// and the move removes the chip at that cell.
type Move struct {
	From Point
	To   Point
}

// NewMove builds a move from raw coordinates.
func NewMove(r1, c1, r2, c2 int) Move {
	return Move{From: Point{r1, c1}, To: Point{r2, c2}}
}

// Removal builds the "remove own chip" move used on turns 0 and 1.
func Removal(row, col int) Move {
	p := Point{row, col}
	return Move{From: p, To: p}
}

// IsRemoval reports whether the move removes a chip instead of jumping.
func (m Move) IsRemoval() bool {
	return m.From == m.To
}

func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}

// ParseMove reads a move written as four integers "r1 c1 r2 c2".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return Move{}, fmt.Errorf("expected 4 integers (r1 c1 r2 c2), got %d fields", len(fields))
	}
	var coords [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Move{}, fmt.Errorf("bad coordinate %q: %w", f, err)
		}
		coords[i] = n
	}
	return NewMove(coords[0], coords[1], coords[2], coords[3]), nil
}
