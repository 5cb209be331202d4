package puzzle

// Board is a square grid of paint flags. board[r][c] is true iff the
// square at row r, column c currently holds paint.
type Board [][]bool

// NewBoard creates an all-unpainted board with the given side length.
func NewBoard(side int) Board {
	b := make(Board, side)
	for r := range b {
		b[r] = make([]bool, side)
	}
	return b
}

// Side returns the number of rows (== columns) of the board.
func (b Board) Side() int {
	return len(b)
}

// IsSquare reports whether the board is exactly side x side.
func (b Board) IsSquare(side int) bool {
	if len(b) != side {
		return false
	}
	for _, row := range b {
		if len(row) != side {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r, row := range b {
		c[r] = make([]bool, len(row))
		copy(c[r], row)
	}
	return c
}

// PaintedCount returns the number of painted squares.
func (b Board) PaintedCount() int {
	n := 0
	for _, row := range b {
		for _, painted := range row {
			if painted {
				n++
			}
		}
	}
	return n
}
