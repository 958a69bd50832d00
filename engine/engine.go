package engine

import (
	"io"

	"konane/game"
	"konane/meta"
	"konane/player"
)

// Update records one move applied by the engine.
type Update struct {
	Turn   int
	Player game.Chip
	Move   game.Move
	Hash   game.StateHash // position after the move
}

type Option func(e *Engine)

// Engine runs a local game between two agents. It owns the authoritative
// board: agents only propose moves, the engine applies them.
type Engine struct {
	Board    *game.Board
	agents   map[game.Chip]player.Agent
	updates  []Update
	maxTurns int
	out      *renderer
}

// WithOutput prints the board before each turn, every move and the result.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = newRenderer(w)
		}
	}
}

// WithBoard starts the game from a given position instead of the opening.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		if board != nil {
			e.Board = board
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(size int, black, white player.Agent, options ...Option) (*Engine, error) {
	if black == nil || white == nil {
		panic("need an agent for each player")
	}

	e := &Engine{
		agents: map[game.Chip]player.Agent{
			game.Black: black,
			game.White: white,
		},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	if e.Board == nil {
		board, err := game.NewBoard(size)
		if err != nil {
			return nil, err
		}
		e.Board = board
	}
	return e, nil
}

// Updates returns the moves applied so far, in order.
func (e *Engine) Updates() []Update {
	return e.updates
}
