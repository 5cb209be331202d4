package rollcube

import "github.com/dmvolkov/rollcube/internal/puzzle"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Side    int
	Row     int
	Col     int
	Moves   int
	Faces   [puzzle.FaceCount]bool
	Painted int // painted squares left on the board
	Done    bool
	Seed    int64
}

// Snapshot returns the current game snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	var faces [puzzle.FaceCount]bool
	painted := 0
	for f := 0; f < puzzle.FaceCount; f++ {
		faces[f] = g.state.IsPaintedFace(f)
	}
	for r := 0; r < g.side; r++ {
		for c := 0; c < g.side; c++ {
			if g.state.IsPaintedSquare(r, c) {
				painted++
			}
		}
	}

	return Snapshot{
		Side:    g.side,
		Row:     g.state.CubeRow(),
		Col:     g.state.CubeCol(),
		Moves:   g.state.Moves(),
		Faces:   faces,
		Painted: painted,
		Done:    g.done,
		Seed:    g.seed,
	}
}
