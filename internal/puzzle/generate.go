package puzzle

import "math/rand"

// DefaultPaintedCells is the number of painted squares in a standard
// random puzzle: exactly as many as the cube has faces.
const DefaultPaintedCells = FaceCount

// RandomBoard creates a side x side board with exactly painted squares
// painted, chosen uniformly without replacement. painted is capped at
// the number of squares on the board.
func RandomBoard(rng *rand.Rand, side, painted int) Board {
	b := NewBoard(side)

	total := side * side
	if painted > total {
		painted = total
	}

	for _, cell := range rng.Perm(total)[:painted] {
		b[cell/side][cell%side] = true
	}
	return b
}

// RandomStart picks a uniformly random cube start position on a board
// with the given side length.
func RandomStart(rng *rand.Rand, side int) (row, col int) {
	return rng.Intn(side), rng.Intn(side)
}
