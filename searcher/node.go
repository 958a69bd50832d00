package searcher

import (
	"konane/game"
)

// Node is a vertex of the search tree. It owns its board: expanding a node
// copies the board before applying the move, so siblings never alias each
// other or the caller's position.
type Node struct {
	board   *game.Board
	depth   int
	best    game.Move
	hasBest bool
}

// NewNode wraps a root position at depth 0.
func NewNode(board *game.Board) *Node {
	return &Node{board: board}
}

// Expand returns the child reached by playing move.
func (n *Node) Expand(move game.Move) (*Node, error) {
	next := n.board.Copy()
	if err := next.Apply(move); err != nil {
		return nil, err
	}
	return &Node{board: next, depth: n.depth + 1}, nil
}

func (n *Node) Board() *game.Board {
	return n.board
}

func (n *Node) Depth() int {
	return n.depth
}

// BestMove returns the move recorded by the last traversal of this node.
func (n *Node) BestMove() (game.Move, bool) {
	return n.best, n.hasBest
}

func (n *Node) SetBestMove(move game.Move) {
	n.best = move
	n.hasBest = true
}

func (n *Node) Evaluate(perspective game.Chip, evaluate game.Evaluate) int {
	return evaluate(n.board, perspective)
}
