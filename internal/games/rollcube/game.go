// Package rollcube adapts the rolling-cube paint puzzle to the game
// platform. The puzzle rules live in internal/puzzle; this package owns
// everything the engine treats as its controller: random puzzle
// generation, command dispatch, pointer-to-cell translation and
// rendering.
package rollcube

import (
	"math/rand"
	"time"

	"github.com/dmvolkov/rollcube/internal/config"
	"github.com/dmvolkov/rollcube/internal/core"
	"github.com/dmvolkov/rollcube/internal/puzzle"
	"github.com/dmvolkov/rollcube/internal/registry"
)

// Game implements the rollcube puzzle game.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	side  int
	seed  int64 // seed that produced the current puzzle
	state *puzzle.State

	// done latches the win: once the puzzle is solved, further move
	// input is swallowed until a new puzzle starts. The engine itself
	// keeps accepting moves.
	done bool

	startedAt time.Time
	solvedIn  time.Duration

	// changed is flipped by the state's change notification and cleared
	// when the platform renders. It exists so observers re-read queries
	// instead of tracking mutations themselves.
	changed bool

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level knobs set by the CLI before game creation.
var (
	configPath string
	preset     string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the board preset: casual, standard or expert.
func SetPreset(p string) {
	preset = p
}

// New creates a new rollcube game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rollcube", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "rollcube"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rollcube"
}

// Reset initializes/restarts the game with a fresh random puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.Load(configPath)
	if err != nil {
		loaded = config.Default()
	}
	if preset != "" {
		config.ApplyPreset(&loaded, config.Preset(preset))
	}
	g.cfg = loaded

	g.side = g.cfg.Board.Side
	if cfg.Side > 2 {
		g.side = cfg.Side
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.newPuzzle()
	g.checkScreenSize()
}

// newPuzzle replaces the current puzzle with a random one drawn from the
// game's RNG stream.
func (g *Game) newPuzzle() {
	g.seed = g.rng.Int63()
	pr := rand.New(rand.NewSource(g.seed))

	board := puzzle.RandomBoard(pr, g.side, g.cfg.Board.PaintedCells)
	row0, col0 := puzzle.RandomStart(pr, g.side)

	state, err := puzzle.New(g.side, row0, col0, board, puzzle.WithSharedBoard())
	if err != nil {
		// The generator only produces boards the engine accepts; a
		// failure here means the config slipped past validation.
		panic(err)
	}
	state.Subscribe(func() { g.changed = true })

	g.state = state
	g.done = false
	g.startedAt = time.Now()
	g.solvedIn = 0
	g.changed = true
}

// checkScreenSize checks if the screen fits the board and face panel.
func (g *Game) checkScreenSize() {
	l := g.layout()
	g.tooSmall = g.screenW < l.minW || g.screenH < l.minH
}

// Resize updates the cached screen dimensions.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Handle dispatches one command against the current puzzle.
func (g *Game) Handle(cmd core.Command) {
	switch c := cmd.(type) {
	case core.Roll:
		dr, dc := c.Dir.Delta()
		g.tryMove(g.state.CubeRow()+dr, g.state.CubeCol()+dc)

	case core.CellClicked:
		g.tryMove(c.Row, c.Col)

	case core.NewPuzzle:
		g.newPuzzle()
		g.checkScreenSize()

	case core.SetSeed:
		g.rng = rand.New(rand.NewSource(c.Seed))

	case core.SetSize:
		if c.Side > 2 {
			g.side = c.Side
			g.newPuzzle()
			g.checkScreenSize()
		}

	case core.Quit:
		// Session teardown belongs to the platform.
	}
}

// tryMove forwards a move to the engine, swallowing invalid-move errors:
// a click on an unreachable square is a no-op, not a fault.
func (g *Game) tryMove(row, col int) {
	if g.done {
		return
	}
	if err := g.state.Move(row, col); err != nil {
		return
	}
	if g.state.Solved() {
		g.done = true
		g.solvedIn = time.Since(g.startedAt)
	}
}

// Seed returns the seed that generated the current puzzle.
func (g *Game) Seed() int64 {
	return g.seed
}

// SolvedIn returns how long the solved puzzle took, or 0 while unsolved.
func (g *Game) SolvedIn() time.Duration {
	return g.solvedIn
}

// State returns the current observable state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:  g.state.Moves(),
		Solved: g.done,
		Side:   g.side,
	}
}
