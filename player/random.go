package player

import (
	"time"

	"konane/experiments/metrics"
	"konane/game"
	"konane/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent that plays a uniformly random legal move. The
// seed makes games reproducible.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrNoMove
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
