package engine

import (
	"fmt"
	"io"
	"strings"

	"konane/game"

	"github.com/muesli/termenv"
)

// renderer writes the game to a terminal. Chips are colored when the writer
// supports it and plain letters otherwise.
type renderer struct {
	out *termenv.Output
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{out: termenv.NewOutput(w)}
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) chip(c game.Chip) string {
	switch c {
	case game.Black:
		return r.out.String(c.String()).Foreground(r.out.Color("1")).Bold().String()
	case game.White:
		return r.out.String(c.String()).Foreground(r.out.Color("4")).Bold().String()
	default:
		return r.out.String(c.String()).Faint().String()
	}
}

// board draws the grid with row and column indices.
func (r *renderer) board(b *game.Board) {
	var sb strings.Builder
	size := b.Size()
	border := "  " + strings.Repeat("-", size*2+3) + "\n"

	sb.WriteString("    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteString("\n")
	sb.WriteString(border)
	for row := 0; row < size; row++ {
		fmt.Fprintf(&sb, "%d | ", row)
		for col := 0; col < size; col++ {
			sb.WriteString(r.chip(b.At(row, col)))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	r.printf("%s", sb.String())
}
