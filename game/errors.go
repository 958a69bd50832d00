package game

import (
	"errors"
	"fmt"
)

// Rule violations reported by Board.TestMove and Board.Apply. Match them
// with errors.Is on the returned *IllegalMoveError.
var (
	ErrOutOfBounds   = errors.New("coordinates are off the board")
	ErrNotRemoval    = errors.New("first two moves must have matching from/to (remove a chip)")
	ErrFirstRemoval  = errors.New("first move must take a chip from a corner or the center")
	ErrSecondRemoval = errors.New("second move must take a chip adjacent to the empty square")
	ErrNotOwned      = errors.New("chip is not owned by the current player")
	ErrOccupied      = errors.New("destination square is occupied")
	ErrNotCardinal   = errors.New("chip must move in a cardinal direction")
	ErrJumpOccupied  = errors.New("jump lands on an occupied square")
	ErrJumpFriendly  = errors.New("jump passes over a friendly chip")
	ErrJumpEmpty     = errors.New("jump passes over an empty square")
	ErrJumpDistance  = errors.New("jump must land an even number of squares away")
)

// IllegalMoveError explains why a proposed move was rejected.
type IllegalMoveError struct {
	Move Move
	At   Point // cell where the violation was detected
	Err  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %v at %s", e.Move, e.Err, e.At)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

func illegal(m Move, at Point, err error) *IllegalMoveError {
	return &IllegalMoveError{Move: m, At: at, Err: err}
}

// InvalidBoardSizeError is returned when a board cannot be built with the
// requested edge length.
type InvalidBoardSizeError struct {
	Size int
}

func (e *InvalidBoardSizeError) Error() string {
	return fmt.Sprintf("invalid board size %d: must satisfy %d <= size <= %d and be even",
		e.Size, MinBoardSize, MaxBoardSize)
}
