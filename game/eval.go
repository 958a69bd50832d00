package game

import "math"

// Evaluate scores a position from the perspective of the given color.
// Higher is better for that color.
type Evaluate func(b *Board, perspective Chip) int

// Win is the value of a decided position for the winner. Every heuristic
// value is strictly inside (-Win, Win).
const Win = math.MaxInt32 / 2

// EvaluateMobility combines the side to move's mobility, the opponent's best
// reply mobility after a one-ply lookahead, and the material balance.
//
// When perspective is not the side to move the score is
// -(2*mobility - minReply + friends - enemies), not a plain negation of the
// side-to-move score.
func EvaluateMobility(b *Board, perspective Chip) int {
	switch b.Winner() {
	case None:
	case perspective:
		return Win
	default:
		return -Win
	}

	moves := b.LegalMoves()
	mobility := len(moves)
	minReply := Win
	for _, move := range moves {
		child := b.Copy()
		if err := child.Apply(move); err != nil {
			panic(err)
		}
		if n := len(child.LegalMoves()); n < minReply {
			minReply = n
		}
	}
	friends := b.Count(perspective)
	enemies := b.Count(perspective.Opponent())

	if perspective == b.Player() {
		return mobility - 2*minReply + friends - enemies
	}
	return -(2*mobility - minReply + friends - enemies)
}

// EvaluateMaterial is the material balance alone. It is much cheaper than
// EvaluateMobility and is useful as a baseline in experiments.
func EvaluateMaterial(b *Board, perspective Chip) int {
	switch b.Winner() {
	case None:
	case perspective:
		return Win
	default:
		return -Win
	}
	return b.Count(perspective) - b.Count(perspective.Opponent())
}
