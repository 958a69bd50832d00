package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"
)

// Bounds on legal board size.
const (
	MinBoardSize = 4
	MaxBoardSize = 8
)

type StateHash uint64

// directions are probed in this order, which fixes the generation order of
// jump moves.
var directions = [4]Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Board is a Konane position: the cells, the turn counter and a memoized list
// of legal moves for the side to move. Black moves on even turns.
//
// Search code must never alias a Board it does not own; branch with Copy.
type Board struct {
	size  int
	cells []Chip // row-major, size*size entries
	turn  int
	moves []Move // valid while !stale
	stale bool
}

// NewBoard returns the starting position: a full checkerboard with Black on
// (0, 0).
func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return nil, &InvalidBoardSizeError{Size: size}
	}
	b := &Board{
		size:  size,
		cells: make([]Chip, size*size),
		stale: true,
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if (row+col)%2 == 0 {
				b.cells[row*size+col] = Black
			} else {
				b.cells[row*size+col] = White
			}
		}
	}
	return b, nil
}

// ParseBoard builds a position from its text rows ('b', 'w' or '.' per cell,
// spaces ignored) and the number of turns already played.
func ParseBoard(rows []string, turn int) (*Board, error) {
	size := len(rows)
	if size < MinBoardSize || size > MaxBoardSize || size%2 != 0 {
		return nil, &InvalidBoardSizeError{Size: size}
	}
	if turn < 0 {
		return nil, fmt.Errorf("turn must be non-negative, got %d", turn)
	}
	b := &Board{
		size:  size,
		cells: make([]Chip, 0, size*size),
		turn:  turn,
		stale: true,
	}
	for i, row := range rows {
		n := 0
		for _, r := range strings.ReplaceAll(row, " ", "") {
			chip, ok := parseChip(r)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown cell %q", i, r)
			}
			b.cells = append(b.cells, chip)
			n++
		}
		if n != size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i, size, n)
		}
	}
	return b, nil
}

// Copy returns a deep copy of the board, including the move memo.
func (b *Board) Copy() *Board {
	cellsCopy := make([]Chip, len(b.cells))
	copy(cellsCopy, b.cells)

	return &Board{
		size:  b.size,
		cells: cellsCopy,
		turn:  b.turn,
		moves: slices.Clone(b.moves),
		stale: b.stale,
	}
}

func (b *Board) Size() int {
	return b.size
}

// Turn returns the number of moves made so far.
func (b *Board) Turn() int {
	return b.turn
}

// Player returns the side to move.
func (b *Board) Player() Chip {
	if b.turn%2 == 0 {
		return Black
	}
	return White
}

// At returns the chip on a cell. Out-of-range coordinates are a programming
// error and panic.
func (b *Board) At(row, col int) Chip {
	if !b.inBounds(Point{row, col}) {
		panic(fmt.Sprintf("row and col (%d, %d) must satisfy 0 <= index < %d", row, col, b.size))
	}
	return b.cells[row*b.size+col]
}

func (b *Board) at(p Point) Chip {
	return b.At(p.Row, p.Col)
}

func (b *Board) set(p Point, c Chip) {
	if !b.inBounds(p) {
		panic(fmt.Sprintf("row and col %s must satisfy 0 <= index < %d", p, b.size))
	}
	b.cells[p.Row*b.size+p.Col] = c
}

func (b *Board) inBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// Count returns how many chips of the given color are on the board.
func (b *Board) Count(c Chip) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// LegalMoves returns the legal moves for the side to move. The result is
// memoized until the next Apply and must not be modified by the caller.
func (b *Board) LegalMoves() []Move {
	if !b.stale {
		return b.moves
	}
	switch b.turn {
	case 0:
		b.moves = b.firstMoves()
	case 1:
		b.moves = b.secondMoves()
	default:
		b.moves = b.jumpMoves()
	}
	b.stale = false
	return b.moves
}

// firstMoves lists the four removals open to Black on turn 0: both corners on
// the main diagonal and the two center cells on it.
func (b *Board) firstMoves() []Move {
	half := b.size / 2
	return []Move{
		Removal(0, 0),
		Removal(half-1, half-1),
		Removal(half, half),
		Removal(b.size-1, b.size-1),
	}
}

// secondMoves lists White's removals next to the square emptied on turn 0.
func (b *Board) secondMoves() []Move {
	moves := []Move{}
	player := b.Player()
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] != None {
				continue
			}
			for _, d := range directions {
				p := Point{row + d.Row, col + d.Col}
				if b.inBounds(p) && b.at(p) == player {
					moves = append(moves, Removal(p.Row, p.Col))
				}
			}
		}
	}
	return moves
}

func (b *Board) jumpMoves() []Move {
	moves := []Move{}
	friend := b.Player()
	enemy := friend.Opponent()
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.cells[row*b.size+col] != friend {
				continue
			}
			start := Point{row, col}
			for _, d := range directions {
				// Odd steps must hold an enemy chip, even steps must be empty.
				// Every empty even step is a landing square.
				for step := 1; ; step++ {
					p := Point{row + step*d.Row, col + step*d.Col}
					if !b.inBounds(p) {
						break
					}
					if step%2 == 1 {
						if b.at(p) != enemy {
							break
						}
						continue
					}
					if b.at(p) != None {
						break
					}
					moves = append(moves, Move{From: start, To: p})
				}
			}
		}
	}
	return moves
}

// IsLegal reports whether the move is in the legal move list.
func (b *Board) IsLegal(m Move) bool {
	return slices.Contains(b.LegalMoves(), m)
}

// TestMove checks a move against the rules of the current turn without
// applying it. The returned error is an *IllegalMoveError.
func (b *Board) TestMove(m Move) error {
	if !b.inBounds(m.From) {
		return illegal(m, m.From, ErrOutOfBounds)
	}
	if !b.inBounds(m.To) {
		return illegal(m, m.To, ErrOutOfBounds)
	}
	switch b.turn {
	case 0:
		return b.testFirstMove(m)
	case 1:
		return b.testSecondMove(m)
	default:
		_, err := b.testJump(m)
		return err
	}
}

func (b *Board) testFirstMove(m Move) error {
	if !m.IsRemoval() {
		return illegal(m, m.From, ErrNotRemoval)
	}
	if !slices.Contains(b.firstMoves(), m) {
		return illegal(m, m.From, ErrFirstRemoval)
	}
	if b.at(m.From) != b.Player() {
		return illegal(m, m.From, ErrNotOwned)
	}
	return nil
}

func (b *Board) testSecondMove(m Move) error {
	if !m.IsRemoval() {
		return illegal(m, m.From, ErrNotRemoval)
	}
	adjacent := false
	for _, d := range directions {
		p := Point{m.From.Row + d.Row, m.From.Col + d.Col}
		if b.inBounds(p) && b.at(p) == None {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return illegal(m, m.From, ErrSecondRemoval)
	}
	if b.at(m.From) != b.Player() {
		return illegal(m, m.From, ErrNotOwned)
	}
	return nil
}

// testJump validates a jump and returns its unit direction.
func (b *Board) testJump(m Move) (Point, error) {
	friend := b.Player()
	if b.at(m.From) != friend {
		return Point{}, illegal(m, m.From, ErrNotOwned)
	}
	if b.at(m.To) != None {
		return Point{}, illegal(m, m.To, ErrOccupied)
	}

	var d Point
	switch {
	case m.From.Row == m.To.Row && m.From.Col > m.To.Col:
		d = Point{0, -1}
	case m.From.Row == m.To.Row && m.From.Col < m.To.Col:
		d = Point{0, 1}
	case m.From.Col == m.To.Col && m.From.Row > m.To.Row:
		d = Point{-1, 0}
	case m.From.Col == m.To.Col && m.From.Row < m.To.Row:
		d = Point{1, 0}
	default:
		return Point{}, illegal(m, m.To, ErrNotCardinal)
	}

	distance := abs(m.To.Row-m.From.Row) + abs(m.To.Col-m.From.Col)
	if distance%2 != 0 {
		return Point{}, illegal(m, m.To, ErrJumpDistance)
	}

	for step := 1; step < distance; step++ {
		p := Point{m.From.Row + step*d.Row, m.From.Col + step*d.Col}
		chip := b.at(p)
		switch {
		case step%2 == 0 && chip != None:
			return Point{}, illegal(m, p, ErrJumpOccupied)
		case step%2 == 1 && chip == friend:
			return Point{}, illegal(m, p, ErrJumpFriendly)
		case step%2 == 1 && chip == None:
			return Point{}, illegal(m, p, ErrJumpEmpty)
		}
	}
	return d, nil
}

// Apply validates the move and plays it in place: the source cell is
// cleared, captured chips are removed, the turn advances and the move memo is
// invalidated. On error the board is unchanged.
func (b *Board) Apply(m Move) error {
	if err := b.TestMove(m); err != nil {
		return err
	}
	if b.turn < 2 {
		b.set(m.From, None)
		b.endTurn()
		return nil
	}

	d, err := b.testJump(m)
	if err != nil {
		return err
	}
	friend := b.Player()
	distance := abs(m.To.Row-m.From.Row) + abs(m.To.Col-m.From.Col)
	b.set(m.From, None)
	for step := 1; step < distance; step += 2 {
		b.set(Point{m.From.Row + step*d.Row, m.From.Col + step*d.Col}, None)
	}
	b.set(m.To, friend)
	b.endTurn()
	return nil
}

func (b *Board) endTurn() {
	b.turn++
	b.stale = true
	b.moves = nil
}

// Winner returns the winning color, or None while the side to move still has
// a legal move. A player with no legal move loses.
func (b *Board) Winner() Chip {
	if len(b.LegalMoves()) == 0 {
		return b.Player().Opponent()
	}
	return None
}

// Hash fingerprints size, turn and cells.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))
	for _, c := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int8(c))
	}

	return StateHash(hasher.Sum64())
}

// Equal compares positions; the move memo is ignored.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.size == other.size && b.turn == other.turn && slices.Equal(b.cells, other.cells)
}

// Rows returns the text form of each row, cells separated by spaces. The
// result round-trips through ParseBoard.
func (b *Board) Rows() []string {
	rows := make([]string, b.size)
	for row := 0; row < b.size; row++ {
		letters := make([]string, b.size)
		for col := 0; col < b.size; col++ {
			letters[col] = b.cells[row*b.size+col].String()
		}
		rows[row] = strings.Join(letters, " ")
	}
	return rows
}

func (b *Board) String() string {
	var sb strings.Builder
	border := strings.Repeat("-", b.size*2+3)

	sb.WriteString(border)
	sb.WriteString("\n")
	for _, row := range b.Rows() {
		sb.WriteString("| ")
		sb.WriteString(row)
		sb.WriteString(" |\n")
	}
	sb.WriteString(border)
	return sb.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
