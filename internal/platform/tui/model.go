// Package tui provides the Bubble Tea integration for the rollcube
// platform. It owns the terminal event loop, the translation of key and
// mouse input into game commands, and result persistence.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/dmvolkov/rollcube/internal/core"
	"github.com/dmvolkov/rollcube/internal/registry"
	"github.com/dmvolkov/rollcube/internal/storage"
)

// resizable is implemented by games that can adapt to a new screen size
// without restarting the current puzzle.
type resizable interface {
	Resize(w, h int)
}

// resultDetails is implemented by games that expose enough detail to
// persist a solved puzzle.
type resultDetails interface {
	Seed() int64
	SolvedIn() time.Duration
}

// Model is the Bubble Tea model for running a puzzle session.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	session  string
	saved    bool // result persisted for the current puzzle
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game. The game
// is reset with a fresh puzzle before the first frame.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)), // last row is the help line
		store:   store,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		session: uuid.NewString(),
	}
	m.game.Reset(m.config)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey translates keyboard input into game commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "?" {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.MapKey(msg)
	if cmd == nil {
		return m, nil
	}

	if _, ok := cmd.(core.Quit); ok {
		m.quitting = true
		return m, tea.Quit
	}

	if _, ok := cmd.(core.NewPuzzle); ok {
		m.saved = false
	}

	m.game.Handle(cmd)
	m.persistIfSolved()
	return m, nil
}

// handleMouse translates a left click into a cell command.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row, col, ok := m.game.CellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	m.game.Handle(core.CellClicked{Row: row, Col: col})
	m.persistIfSolved()
	return m, nil
}

// handleResize processes window resize events without restarting the
// puzzle.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, core.Max(msg.Height-1, 1))
	}

	return m, nil
}

// persistIfSolved records the result the first time the current puzzle
// reaches the solved state.
func (m *Model) persistIfSolved() {
	st := m.game.State()
	if !st.Solved || m.saved || m.store == nil {
		return
	}

	entry := storage.ResultEntry{
		GameID:  m.game.ID(),
		Side:    st.Side,
		Moves:   st.Moves,
		Session: m.session,
	}
	if d, ok := m.game.(resultDetails); ok {
		entry.Seed = d.Seed()
		entry.Duration = int(d.SolvedIn().Seconds())
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveResult(entry)
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click a neighbor square to roll onto it
	)

	_, err := p.Run()
	return err
}
