package searcher

import (
	"math"
	"time"

	"konane/game"

	"golang.org/x/exp/slices"
)

// walk is one depth-bounded traversal. It carries the search parameters and
// accumulates the counters for that traversal only.
type walk struct {
	perspective game.Chip
	evaluate    game.Evaluate
	bound       int
	pruning     bool
	ordering    bool

	clock    Clock
	start    time.Time
	budget   time.Duration // zero disables the clock
	expired  bool
	nodes    int
	maxDepth int
}

// run searches from root and returns its backed-up value. The best move is
// recorded on root. When the clock expires the result is meaningless and
// expired is set.
func (w *walk) run(root *Node) int {
	return w.search(root, math.MinInt, math.MaxInt)
}

func (w *walk) search(n *Node, alpha, beta int) int {
	if w.cutoff(n) {
		return n.Evaluate(w.perspective, w.evaluate)
	}

	maximizing := n.Board().Player() == w.perspective
	moves := n.Board().LegalMoves()
	if w.ordering {
		moves = w.order(n, moves, maximizing)
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}
	for _, move := range moves {
		if w.timeUp() {
			w.expired = true
			return 0
		}

		child := w.expand(n, move)
		v := w.search(child, alpha, beta)
		if w.expired {
			return 0
		}

		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
			n.SetBestMove(move)
		}

		if !w.pruning {
			continue
		}
		if maximizing {
			if best >= beta {
				return best
			}
			alpha = max(alpha, best)
		} else {
			if best <= alpha {
				return best
			}
			beta = min(beta, best)
		}
	}
	return best
}

// cutoff reports whether n is a leaf of this traversal and records the depth
// at which the tree was cut.
func (w *walk) cutoff(n *Node) bool {
	if n.Board().Winner() == game.None && n.Depth() < w.bound {
		return false
	}
	if n.Depth() > w.maxDepth {
		w.maxDepth = n.Depth()
	}
	return true
}

func (w *walk) expand(n *Node, move game.Move) *Node {
	child, err := n.Expand(move)
	if err != nil {
		// Moves come from the board's own generator.
		panic(err)
	}
	w.nodes++
	return child
}

func (w *walk) timeUp() bool {
	return w.budget > 0 && w.clock().Sub(w.start) > w.budget
}

// order sorts a copy of moves by the evaluation of the position each one
// leads to: best first for the player whose turn it is at n. Equal keys keep
// generation order.
func (w *walk) order(n *Node, moves []game.Move, maximizing bool) []game.Move {
	keys := make(map[game.Move]int, len(moves))
	for _, move := range moves {
		child, err := n.Expand(move)
		if err != nil {
			panic(err)
		}
		keys[move] = child.Evaluate(w.perspective, w.evaluate)
	}

	sorted := slices.Clone(moves)
	slices.SortStableFunc(sorted, func(a, b game.Move) int {
		if maximizing {
			return keys[b] - keys[a]
		}
		return keys[a] - keys[b]
	})
	return sorted
}
