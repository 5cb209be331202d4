package registry

import (
	"testing"

	"github.com/dmvolkov/rollcube/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                       { return g.id }
func (g *stubGame) Title() string                    { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)         {}
func (g *stubGame) Handle(core.Command)              {}
func (g *stubGame) CellAt(x, y int) (int, int, bool) { return 0, 0, false }
func (g *stubGame) Render(*core.Screen)              {}
func (g *stubGame) State() core.GameState            { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") {
		t.Fatal("Exists() = false for registered game")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, want %q", g.ID(), "stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() should fail for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("Exists() = true for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()

	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Stub Z"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })

	games := List()
	if len(games) < 2 {
		t.Fatalf("List() returned %d games, want at least 2", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
