// Package puzzle implements the rolling-cube paint puzzle state machine.
//
// A cube sits on a square grid. Some grid squares and some cube faces
// hold paint. Rolling the cube onto an adjacent square permutes the six
// face values and, when the bottom face and the destination square
// disagree, swaps paint between them. The puzzle is solved when all six
// faces are painted.
//
// The package contains pure logic with no external dependencies; the
// platform layer drives it and re-reads its queries after every change.
package puzzle

import (
	"errors"
	"fmt"
)

// Face indices of the cube, fixed relative to the initial orientation.
const (
	FaceNear   = 0 // vertical face toward row 0
	FaceFar    = 1 // vertical face toward the last row
	FaceLeft   = 2 // vertical face toward column 0
	FaceRight  = 3 // vertical face toward the last column
	FaceBottom = 4
	FaceTop    = 5

	// FaceCount is the number of cube faces.
	FaceCount = 6
)

// ErrInvalidMove is returned by Move for an out-of-range or non-adjacent
// destination. The state is unchanged when it is returned; callers
// driven by speculative input (a stray click) are expected to ignore it.
var ErrInvalidMove = errors.New("puzzle: invalid move")

// facePerms maps a roll direction to the face permutation it applies:
// new face i takes the value of old face facePerms[dir][i]. The bottom
// and top indices always stay 4 and 5 after a roll; the four vertical
// faces cycle through positions 0-3.
var facePerms = map[[2]int][FaceCount]int{
	{1, 0}:  {4, 5, 2, 3, 1, 0}, // down, toward the last row
	{-1, 0}: {5, 4, 2, 3, 0, 1}, // up, toward row 0
	{0, 1}:  {0, 1, 4, 5, 3, 2}, // right
	{0, -1}: {0, 1, 5, 4, 2, 3}, // left
}

// State is a single puzzle instance: the grid, the cube position and
// face paint, and the move counter. It is mutated only through Move and
// replaced wholesale when a new puzzle is requested.
//
// State is not safe for concurrent use; a caller embedding it in a
// multi-threaded host must serialize access.
type State struct {
	side  int
	row   int
	col   int
	board Board
	faces [FaceCount]bool
	moves int

	listeners []func()
}

// Option configures New and Copy.
type Option func(*options)

type options struct {
	faces      [FaceCount]bool
	hasFaces   bool
	shareBoard bool
}

// WithFaces sets the initial face-paint vector. The default is a blank
// cube.
func WithFaces(faces [FaceCount]bool) Option {
	return func(o *options) {
		o.faces = faces
		o.hasFaces = true
	}
}

// WithSharedBoard makes the state alias the caller's board instead of
// deep-copying it. Paint transferred onto the board then becomes visible
// through the original slices, so the caller must be the only other
// writer. The default is a private copy.
func WithSharedBoard() Option {
	return func(o *options) {
		o.shareBoard = true
	}
}

// New creates a puzzle of size side x side with the cube at (row0, col0).
// It returns an error when side <= 2, the board is not exactly
// side x side, or the start position is out of range.
func New(side, row0, col0 int, board Board, opts ...Option) (*State, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if side <= 2 {
		return nil, fmt.Errorf("puzzle: side must be > 2, got %d", side)
	}
	if !board.IsSquare(side) {
		return nil, fmt.Errorf("puzzle: board is not %dx%d", side, side)
	}
	if row0 < 0 || row0 >= side || col0 < 0 || col0 >= side {
		return nil, fmt.Errorf("puzzle: start position (%d, %d) outside %dx%d board", row0, col0, side, side)
	}

	if !o.shareBoard {
		board = board.Clone()
	}

	s := &State{
		side:  side,
		row:   row0,
		col:   col0,
		board: board,
		faces: o.faces,
	}
	s.notify()
	return s, nil
}

// Copy creates a state equal to src: same side, position, face vector
// and move count. The board is deep-copied unless WithSharedBoard is
// given, in which case the two states roll over the same squares.
func Copy(src *State, opts ...Option) *State {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	board := src.board
	if !o.shareBoard {
		board = board.Clone()
	}

	s := &State{
		side:  src.side,
		row:   src.row,
		col:   src.col,
		board: board,
		faces: src.faces,
		moves: src.moves,
	}
	s.notify()
	return s
}

// Move rolls the cube onto (row, col), which must be on the board and
// orthogonally adjacent to the current position. It permutes the face
// vector for the roll direction, swaps paint between the bottom face and
// the destination square when they disagree, and increments the move
// counter. On ErrInvalidMove nothing changes.
//
// Move keeps working after the puzzle is solved; stopping is the
// caller's decision.
func (s *State) Move(row, col int) error {
	if row < 0 || row >= s.side || col < 0 || col >= s.side {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d board", ErrInvalidMove, row, col, s.side, s.side)
	}

	perm, ok := facePerms[[2]int{row - s.row, col - s.col}]
	if !ok {
		return fmt.Errorf("%w: (%d, %d) not adjacent to (%d, %d)", ErrInvalidMove, row, col, s.row, s.col)
	}

	var rolled [FaceCount]bool
	for i, from := range perm {
		rolled[i] = s.faces[from]
	}
	s.faces = rolled
	s.row = row
	s.col = col

	// Paint transfers only when face and square disagree: the face takes
	// the square's value and the square takes the face's old value.
	if s.faces[FaceBottom] != s.board[row][col] {
		s.faces[FaceBottom] = s.board[row][col]
		s.board[row][col] = !s.faces[FaceBottom]
	}

	s.moves++
	s.notify()
	return nil
}

// Side returns the number of squares on a side.
func (s *State) Side() int {
	return s.side
}

// IsPaintedSquare reports whether square (row, col) is painted.
// Requires 0 <= row, col < Side().
func (s *State) IsPaintedSquare(row, col int) bool {
	return s.board[row][col]
}

// CubeRow returns the current row of the cube.
func (s *State) CubeRow() int {
	return s.row
}

// CubeCol returns the current column of the cube.
func (s *State) CubeCol() int {
	return s.col
}

// Moves returns the number of moves made on the current puzzle.
func (s *State) Moves() int {
	return s.moves
}

// IsPaintedFace reports whether the given face is painted.
// Requires 0 <= face < FaceCount.
func (s *State) IsPaintedFace(face int) bool {
	return s.faces[face]
}

// Solved reports whether all six faces are painted.
func (s *State) Solved() bool {
	for _, painted := range s.faces {
		if !painted {
			return false
		}
	}
	return true
}

// Subscribe registers fn to run synchronously after every mutation of
// this state, before the mutating call returns. The callback must not
// call Move or other mutating operations on the same state.
func (s *State) Subscribe(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *State) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
