package core

// Direction is an orthogonal roll direction on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (row, col) step for the direction.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Command is a closed set of game commands. The platform translates raw
// key and mouse input into these variants and games dispatch on the
// concrete type, so there is no string matching anywhere in the flow.
type Command interface {
	isCommand()
}

// NewPuzzle requests a fresh random puzzle with the current settings.
type NewPuzzle struct{}

// SetSeed reseeds the puzzle generator. The next NewPuzzle uses it.
type SetSeed struct {
	Seed int64
}

// SetSize changes the board side and starts a fresh puzzle.
type SetSize struct {
	Side int
}

// Quit requests session termination. Handled by the platform; games
// receiving it should treat it as a no-op.
type Quit struct{}

// CellClicked reports a pointer click translated to grid coordinates.
type CellClicked struct {
	Row, Col int
}

// Roll requests rolling the cube one square in a direction.
type Roll struct {
	Dir Direction
}

func (NewPuzzle) isCommand()   {}
func (SetSeed) isCommand()     {}
func (SetSize) isCommand()     {}
func (Quit) isCommand()        {}
func (CellClicked) isCommand() {}
func (Roll) isCommand()        {}
