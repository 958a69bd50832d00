package searcher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"konane/experiments/metrics"
	"konane/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNoMove      = errors.New("no legal move to search")
	ErrWrongPlayer = errors.New("searcher asked to move for the other player")
)

// Clock returns the current time. Tests replace it to drive time budgets.
type Clock func() time.Time

type Option func(s *Searcher)

// Searcher picks moves with depth-bounded minimax. The same walk serves the
// four strategies: plain minimax, alpha-beta pruning (optionally with move
// ordering) and time-bounded iterative deepening of either.
type Searcher struct {
	player   game.Chip
	depth    int
	duration time.Duration
	pruning  bool
	ordering bool
	evaluate game.Evaluate
	clock    Clock
	metrics  metrics.Collector
}

// WithDepth fixes the depth bound. Combined with WithDuration it caps the
// deepening loop instead.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithDuration enables iterative deepening within the given time budget.
func WithDuration(duration time.Duration) Option {
	return func(s *Searcher) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithPruning() Option {
	return func(s *Searcher) {
		s.pruning = true
	}
}

// WithMoveOrdering sorts children by their one-ply evaluation before
// recursing. It only pays off together with pruning.
func WithMoveOrdering() Option {
	return func(s *Searcher) {
		s.ordering = true
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithClock(clock Clock) Option {
	return func(s *Searcher) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func New(player game.Chip, options ...Option) *Searcher {
	if player != game.Black && player != game.White {
		panic("Must specify a player color")
	}
	s := &Searcher{ // Default values
		player:   player,
		evaluate: game.EvaluateMobility,
		clock:    time.Now,
		metrics:  metrics.NewCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.depth <= 0 && s.duration <= 0 {
		panic("Must specify search depth or duration")
	}
	return s
}

func NewMinimax(player game.Chip, depth int, options ...Option) *Searcher {
	return New(player, append([]Option{WithDepth(depth)}, options...)...)
}

func NewAlphaBeta(player game.Chip, depth int, ordering bool, options ...Option) *Searcher {
	base := []Option{WithDepth(depth), WithPruning()}
	if ordering {
		base = append(base, WithMoveOrdering())
	}
	return New(player, append(base, options...)...)
}

func NewIterativeMinimax(player game.Chip, duration time.Duration, options ...Option) *Searcher {
	return New(player, append([]Option{WithDuration(duration)}, options...)...)
}

func NewIterativeAlphaBeta(player game.Chip, duration time.Duration, ordering bool, options ...Option) *Searcher {
	base := []Option{WithDuration(duration), WithPruning()}
	if ordering {
		base = append(base, WithMoveOrdering())
	}
	return New(player, append(base, options...)...)
}

func (s *Searcher) Player() game.Chip {
	return s.player
}

// Kind names the strategy: minimax, alphabeta, id-minimax or id-alphabeta.
func (s *Searcher) Kind() string {
	kind := "minimax"
	if s.pruning {
		kind = "alphabeta"
	}
	if s.duration > 0 {
		kind = "id-" + kind
	}
	return kind
}

func (s *Searcher) String() string {
	params := []string{}
	if s.depth > 0 {
		params = append(params, fmt.Sprintf("depth=%d", s.depth))
	}
	if s.duration > 0 {
		params = append(params, fmt.Sprintf("time=%s", s.duration))
	}
	if s.ordering {
		params = append(params, "ordering")
	}
	return fmt.Sprintf("%s(%s)", s.Kind(), strings.Join(params, ", "))
}

// FindMove searches the position and returns the chosen move with the
// counters of this decision. The board is not modified.
func (s *Searcher) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	if len(board.LegalMoves()) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoMove
	}
	if board.Player() != s.player {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s to move, searching for %s",
			ErrWrongPlayer, board.Player().Name(), s.player.Name())
	}

	s.metrics.Start()
	var move game.Move
	if s.duration > 0 {
		move = s.deepen(board)
	} else {
		move = s.fixed(board)
	}
	return move, s.metrics.Complete(), nil
}

func (s *Searcher) newWalk(bound int) *walk {
	return &walk{
		perspective: s.player,
		evaluate:    s.evaluate,
		bound:       bound,
		pruning:     s.pruning,
		ordering:    s.ordering,
		clock:       s.clock,
	}
}

func (s *Searcher) fixed(board *game.Board) game.Move {
	w := s.newWalk(s.depth)
	root := NewNode(board.Copy())
	value := w.run(root)
	s.record(w)
	s.metrics.CompleteDepth(s.depth, value)

	move, ok := root.BestMove()
	if !ok {
		panic("search completed without a best move")
	}
	return move
}

// deepen runs walks with bounds 1, 2, ... until the budget is spent or a
// decided value is proven. A walk interrupted by the clock is discarded. The
// first walk is never interrupted so there is always a move to return.
func (s *Searcher) deepen(board *game.Board) game.Move {
	start := s.clock()
	limit := board.Size() * board.Size()
	if s.depth > 0 {
		limit = min(limit, s.depth)
	}

	var best game.Move
	for bound := 1; bound <= limit; bound++ {
		w := s.newWalk(bound)
		if bound > 1 {
			w.start = start
			w.budget = s.duration
		}
		root := NewNode(board.Copy())
		value := w.run(root)
		s.record(w)

		if w.expired {
			log.Debug().
				Str("player", s.player.Name()).
				Int("depth", bound).
				Int("nodes", w.nodes).
				Msg("abandoned depth")
			break
		}

		move, ok := root.BestMove()
		if !ok {
			panic("search completed without a best move")
		}
		best = move
		s.metrics.CompleteDepth(bound, value)
		log.Debug().
			Str("player", s.player.Name()).
			Int("depth", bound).
			Int("value", value).
			Int("nodes", w.nodes).
			Str("move", move.String()).
			Msg("completed depth")

		if value == game.Win || value == -game.Win {
			break
		}
		if s.clock().Sub(start) > s.duration {
			break
		}
	}
	return best
}

func (s *Searcher) record(w *walk) {
	s.metrics.AddNodes(w.nodes)
	s.metrics.ReachDepth(w.maxDepth)
}
