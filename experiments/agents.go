package experiments

import (
	"fmt"

	"konane/experiments/metrics"
	"konane/game"
	"konane/player"
	"konane/searcher"
)

// NewAgent builds the agent described by config to play the given color.
// The seed only matters for the random agent.
func NewAgent(config metrics.AgentConfig, color game.Chip, seed uint64) (player.Agent, error) {
	switch config.Kind {
	case "random":
		return player.NewRandom(seed), nil
	case "minimax":
		if config.Depth <= 0 {
			return nil, fmt.Errorf("agent %d: minimax needs a depth", config.ID)
		}
		return searcher.NewMinimax(color, config.Depth), nil
	case "alphabeta":
		if config.Depth <= 0 {
			return nil, fmt.Errorf("agent %d: alphabeta needs a depth", config.ID)
		}
		return searcher.NewAlphaBeta(color, config.Depth, config.Ordering), nil
	case "id-minimax":
		if config.Duration <= 0 {
			return nil, fmt.Errorf("agent %d: id-minimax needs a duration", config.ID)
		}
		return searcher.NewIterativeMinimax(color, config.Duration, searcher.WithDepth(config.Depth)), nil
	case "id-alphabeta":
		if config.Duration <= 0 {
			return nil, fmt.Errorf("agent %d: id-alphabeta needs a duration", config.ID)
		}
		return searcher.NewIterativeAlphaBeta(color, config.Duration, config.Ordering, searcher.WithDepth(config.Depth)), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
