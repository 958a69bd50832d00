package engine

import (
	"fmt"
	"time"

	"konane/experiments/metrics"
	"konane/game"

	"github.com/rs/zerolog/log"
)

// Run plays until one side has no legal move and returns the winner with the
// game and per-move metrics. An agent error or an illegal move stops the game.
func (e *Engine) Run() (game.Chip, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Size:      e.Board.Size(),
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Int("size", e.Board.Size()).Int("turn", e.Board.Turn()).Msg("starting game")

	for e.Board.Winner() == game.None {
		turn := e.Board.Turn()
		if turn >= e.maxTurns {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("game exceeded %d turns", e.maxTurns)
		}
		current := e.Board.Player()
		if e.out != nil {
			e.out.board(e.Board)
		}

		move, searchMetric, err := e.agents[current].FindMove(e.Board)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move: %w", current.Name(), err)
		}
		if err := e.Board.Apply(move); err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("%s returned a rejected move: %w", current.Name(), err)
		}

		e.updates = append(e.updates, Update{
			Turn:   turn,
			Player: current,
			Move:   move,
			Hash:   e.Board.Hash(),
		})
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       current.Name(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})

		log.Info().
			Int("turn", turn).
			Str("player", current.Name()).
			Str("move", move.String()).
			Int("nodes", searchMetric.Nodes).
			Int("total_nodes", searchMetric.TotalNodes).
			Int("max_depth", searchMetric.MaxDepth).
			Int("total_max_depth", searchMetric.TotalMaxDepth).
			Int("completed_depth", searchMetric.CompletedDepth).
			Int("value", searchMetric.Value).
			Dur("duration", searchMetric.Duration).
			Msg("move played")
		if e.out != nil {
			e.out.printf("%s plays %s\n", current.Name(), move)
		}
	}

	winner := e.Board.Winner()
	gameMetric.Winner = winner.Name()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Str("winner", winner.Name()).Int("turns", e.Board.Turn()).Msg("game over")
	if e.out != nil {
		e.out.board(e.Board)
		e.out.printf("%s wins after %d turns\n", winner.Name(), e.Board.Turn())
	}

	return winner, gameMetric, moveMetrics, nil
}
