package player

import (
	"konane/experiments/metrics"
	"konane/game"
)

// Agent chooses a move for the side to move. It must not modify the board;
// the engine applies the returned move.
type Agent interface {
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
