package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher"
)

type humanAgent struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHuman returns an agent that lists the legal moves on out and reads
// "r1 c1 r2 c2" lines from in until one of them is legal.
func NewHuman(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewReader(in), out: out}
}

func (a *humanAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoMove
	}

	fmt.Fprintf(a.out, "Turn %d, legal moves (%d):\n", board.Turn(), len(moves))
	for _, m := range moves {
		fmt.Fprintln(a.out, m)
	}

	for {
		fmt.Fprint(a.out, "Enter a move (r1 c1 r2 c2): ")
		line, err := a.in.ReadString('\n')
		if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
		}

		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintf(a.out, "bad input, expected: <int> <int> <int> <int>\n\t(%v)\n", err)
			continue
		}
		// Validate only; the engine applies the move.
		if err := board.TestMove(move); err != nil {
			fmt.Fprintf(a.out, "Move %s is illegal:\n\t%v\n", move, err)
			continue
		}
		return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
	}
}
