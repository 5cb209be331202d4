package puzzle

import (
	"errors"
	"testing"
)

// newBlank returns a 4x4 all-unpainted puzzle with the cube at (0, 0).
func newBlank(t *testing.T) *State {
	t.Helper()
	s, err := New(4, 0, 0, NewBoard(4))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name       string
		side       int
		row0, col0 int
		board      Board
		wantErr    bool
	}{
		{"valid minimal", 3, 0, 0, NewBoard(3), false},
		{"valid start in corner", 4, 3, 3, NewBoard(4), false},
		{"side too small", 2, 0, 0, NewBoard(2), true},
		{"side zero", 0, 0, 0, NewBoard(0), true},
		{"board too small", 4, 0, 0, NewBoard(3), true},
		{"board too large", 4, 0, 0, NewBoard(5), true},
		{"ragged board", 4, 0, 0, Board{{false}, {false, false, false, false}, {false, false, false, false}, {false, false, false, false}}, true},
		{"row out of range", 4, 4, 0, NewBoard(4), true},
		{"col out of range", 4, 0, -1, NewBoard(4), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.side, tc.row0, tc.col0, tc.board)
			if (err != nil) != tc.wantErr {
				t.Errorf("New(%d, %d, %d) error = %v, wantErr %v", tc.side, tc.row0, tc.col0, err, tc.wantErr)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s := newBlank(t)

	if s.Side() != 4 {
		t.Errorf("Side() = %d, expected 4", s.Side())
	}
	if s.CubeRow() != 0 || s.CubeCol() != 0 {
		t.Errorf("cube at (%d, %d), expected (0, 0)", s.CubeRow(), s.CubeCol())
	}
	if s.Moves() != 0 {
		t.Errorf("Moves() = %d, expected 0", s.Moves())
	}
	for f := 0; f < FaceCount; f++ {
		if s.IsPaintedFace(f) {
			t.Errorf("face %d painted on a blank cube", f)
		}
	}
}

func TestWithFaces(t *testing.T) {
	faces := [FaceCount]bool{true, false, true, false, true, false}
	s, err := New(4, 1, 1, NewBoard(4), WithFaces(faces))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for f := 0; f < FaceCount; f++ {
		if s.IsPaintedFace(f) != faces[f] {
			t.Errorf("IsPaintedFace(%d) = %v, expected %v", f, s.IsPaintedFace(f), faces[f])
		}
	}
}

func TestSolvedMatchesFaceVector(t *testing.T) {
	// Solved must hold exactly when every face entry is true, for all
	// 64 possible face vectors.
	for mask := 0; mask < 1<<FaceCount; mask++ {
		var faces [FaceCount]bool
		for f := 0; f < FaceCount; f++ {
			faces[f] = mask&(1<<f) != 0
		}

		s, err := New(3, 0, 0, NewBoard(3), WithFaces(faces))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		want := mask == 1<<FaceCount-1
		if s.Solved() != want {
			t.Errorf("faces %06b: Solved() = %v, expected %v", mask, s.Solved(), want)
		}
	}
}

func TestMoveRejected(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"current position", 1, 1},
		{"diagonal", 2, 2},
		{"diagonal up-left", 0, 0},
		{"two steps down", 3, 1},
		{"two steps right", 1, 3},
		{"row negative", -1, 1},
		{"row past edge", 4, 1},
		{"col negative", 1, -1},
		{"col past edge", 1, 4},
		{"far corner", 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := NewBoard(4)
			board[2][1] = true
			s, err := New(4, 1, 1, board, WithFaces([FaceCount]bool{true, false, false, true, false, false}))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			err = s.Move(tc.row, tc.col)
			if !errors.Is(err, ErrInvalidMove) {
				t.Fatalf("Move(%d, %d) error = %v, expected ErrInvalidMove", tc.row, tc.col, err)
			}

			// State must be untouched by a rejected move.
			if s.CubeRow() != 1 || s.CubeCol() != 1 {
				t.Errorf("cube moved to (%d, %d) on rejected move", s.CubeRow(), s.CubeCol())
			}
			if s.Moves() != 0 {
				t.Errorf("Moves() = %d after rejected move, expected 0", s.Moves())
			}
			if !s.IsPaintedFace(FaceNear) || !s.IsPaintedFace(FaceRight) || s.IsPaintedFace(FaceBottom) {
				t.Error("face vector changed on rejected move")
			}
			if !s.IsPaintedSquare(2, 1) {
				t.Error("board changed on rejected move")
			}
		})
	}
}

func TestOrthogonalNeighborsAccepted(t *testing.T) {
	neighbors := []struct {
		name     string
		row, col int
	}{
		{"up", 0, 1},
		{"down", 2, 1},
		{"left", 1, 0},
		{"right", 1, 2},
	}

	for _, n := range neighbors {
		t.Run(n.name, func(t *testing.T) {
			s, err := New(4, 1, 1, NewBoard(4))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			if err := s.Move(n.row, n.col); err != nil {
				t.Fatalf("Move(%d, %d) rejected: %v", n.row, n.col, err)
			}
			if s.CubeRow() != n.row || s.CubeCol() != n.col {
				t.Errorf("cube at (%d, %d), expected (%d, %d)", s.CubeRow(), s.CubeCol(), n.row, n.col)
			}
			if s.Moves() != 1 {
				t.Errorf("Moves() = %d, expected 1", s.Moves())
			}
		})
	}
}

func TestMoveCounter(t *testing.T) {
	s := newBlank(t)

	// Roll back and forth along the top row.
	path := [][2]int{{0, 1}, {0, 2}, {0, 1}, {0, 0}, {1, 0}, {0, 0}, {0, 1}}
	for i, p := range path {
		if err := s.Move(p[0], p[1]); err != nil {
			t.Fatalf("move %d to (%d, %d) rejected: %v", i, p[0], p[1], err)
		}
		if s.Moves() != i+1 {
			t.Errorf("after %d moves Moves() = %d", i+1, s.Moves())
		}
	}
}

func TestRollBackRestoresFaces(t *testing.T) {
	// Rolling somewhere and immediately rolling back applies a
	// permutation and its inverse. Painting only the top face keeps the
	// bottom blank through both rolls, so no paint transfer interferes
	// and the whole face vector must come back exactly.
	dirs := []struct {
		name   string
		dr, dc int
	}{
		{"down", 1, 0},
		{"up", -1, 0},
		{"right", 0, 1},
		{"left", 0, -1},
	}

	var faces [FaceCount]bool
	faces[FaceTop] = true

	for _, d := range dirs {
		t.Run(d.name, func(t *testing.T) {
			s, err := New(4, 1, 1, NewBoard(4), WithFaces(faces))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			if err := s.Move(1+d.dr, 1+d.dc); err != nil {
				t.Fatalf("roll %s rejected: %v", d.name, err)
			}
			if s.IsPaintedFace(FaceTop) {
				t.Error("roll should have moved the top paint to a side face")
			}
			if err := s.Move(1, 1); err != nil {
				t.Fatalf("roll back rejected: %v", err)
			}

			if s.CubeRow() != 1 || s.CubeCol() != 1 {
				t.Fatalf("cube at (%d, %d) after roll back", s.CubeRow(), s.CubeCol())
			}
			for f := 0; f < FaceCount; f++ {
				if s.IsPaintedFace(f) != faces[f] {
					t.Errorf("face %d = %v after roll back, expected %v", f, s.IsPaintedFace(f), faces[f])
				}
			}
		})
	}
}

func TestPaintTransfer(t *testing.T) {
	tests := []struct {
		name        string
		bottomAfter bool // bottom face value right after the permutation
		cell        bool
		wantFace    bool
		wantCell    bool
	}{
		{"both unpainted, no change", false, false, false, false},
		{"both painted, no change", true, true, true, true},
		{"cell painted, paint moves to face", false, true, true, false},
		{"face painted, paint moves to cell", true, false, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := NewBoard(4)
			board[0][1] = tc.cell

			// Rolling right brings the old right face (index 3) to the
			// bottom, so seed the paint there.
			var faces [FaceCount]bool
			faces[FaceRight] = tc.bottomAfter

			s, err := New(4, 0, 0, board, WithFaces(faces))
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			if err := s.Move(0, 1); err != nil {
				t.Fatalf("Move(0, 1) rejected: %v", err)
			}

			if s.IsPaintedFace(FaceBottom) != tc.wantFace {
				t.Errorf("bottom face = %v, expected %v", s.IsPaintedFace(FaceBottom), tc.wantFace)
			}
			if s.IsPaintedSquare(0, 1) != tc.wantCell {
				t.Errorf("square (0, 1) = %v, expected %v", s.IsPaintedSquare(0, 1), tc.wantCell)
			}
		})
	}
}

func TestScenarioRightRollNoTransfer(t *testing.T) {
	s := newBlank(t)

	if err := s.Move(0, 1); err != nil {
		t.Fatalf("Move(0, 1) rejected: %v", err)
	}

	for f := 0; f < FaceCount; f++ {
		if s.IsPaintedFace(f) {
			t.Errorf("face %d painted after rolling over a blank square", f)
		}
	}
	if s.CubeRow() != 0 || s.CubeCol() != 1 {
		t.Errorf("cube at (%d, %d), expected (0, 1)", s.CubeRow(), s.CubeCol())
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}
}

func TestScenarioRightRollTransfer(t *testing.T) {
	board := NewBoard(4)
	board[0][1] = true
	s, err := New(4, 0, 0, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.Move(0, 1); err != nil {
		t.Fatalf("Move(0, 1) rejected: %v", err)
	}

	if !s.IsPaintedFace(FaceBottom) {
		t.Error("bottom face should have picked up the square's paint")
	}
	if s.IsPaintedSquare(0, 1) {
		t.Error("square (0, 1) should have lost its paint")
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}
}

func TestSolveInSixMoves(t *testing.T) {
	// With every square painted, right/down/right/down/right/down from
	// the corner visits six distinct squares and brings each unpainted
	// face to the bottom exactly once.
	board := NewBoard(4)
	for r := range board {
		for c := range board[r] {
			board[r][c] = true
		}
	}
	s, err := New(4, 0, 0, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	path := [][2]int{{0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 3}, {3, 3}}
	for i, p := range path {
		if s.Solved() {
			t.Fatalf("solved early after %d moves", i)
		}
		if err := s.Move(p[0], p[1]); err != nil {
			t.Fatalf("move %d to (%d, %d) rejected: %v", i, p[0], p[1], err)
		}
	}

	if !s.Solved() {
		t.Fatal("puzzle should be solved after six transfer moves")
	}
	if s.Moves() != 6 {
		t.Errorf("Moves() = %d, expected 6", s.Moves())
	}

	// The engine does not block moves once solved.
	if err := s.Move(3, 2); err != nil {
		t.Errorf("Move after solving rejected: %v", err)
	}
	if s.Moves() != 7 {
		t.Errorf("Moves() = %d after post-solve move, expected 7", s.Moves())
	}
}

func TestCopyDeepByDefault(t *testing.T) {
	board := NewBoard(4)
	board[1][0] = true
	src, err := New(4, 0, 0, board, WithFaces([FaceCount]bool{true}))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := src.Move(0, 1); err != nil {
		t.Fatalf("Move() rejected: %v", err)
	}

	cp := Copy(src)

	if cp.Side() != src.Side() || cp.CubeRow() != src.CubeRow() || cp.CubeCol() != src.CubeCol() {
		t.Error("copy does not match source position")
	}
	if cp.Moves() != src.Moves() {
		t.Errorf("copy Moves() = %d, source %d", cp.Moves(), src.Moves())
	}
	for f := 0; f < FaceCount; f++ {
		if cp.IsPaintedFace(f) != src.IsPaintedFace(f) {
			t.Errorf("copy face %d differs from source", f)
		}
	}

	// Rolling the copy over paint must not disturb the source's board.
	if err := cp.Move(1, 1); err != nil {
		t.Fatalf("Move() on copy rejected: %v", err)
	}
	if err := cp.Move(1, 0); err != nil {
		t.Fatalf("Move() on copy rejected: %v", err)
	}
	if !src.IsPaintedSquare(1, 0) {
		t.Error("mutating the copy changed the source board")
	}
}

func TestCopySharedBoard(t *testing.T) {
	board := NewBoard(4)
	board[0][1] = true
	src, err := New(4, 0, 0, board)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cp := Copy(src, WithSharedBoard())

	// The shared copy consumes the paint; the source sees it gone.
	if err := cp.Move(0, 1); err != nil {
		t.Fatalf("Move() on copy rejected: %v", err)
	}
	if src.IsPaintedSquare(0, 1) {
		t.Error("shared-board copy should write through to the source board")
	}
}

func TestNewSharedBoardAliases(t *testing.T) {
	board := NewBoard(4)
	board[0][1] = true
	s, err := New(4, 0, 0, board, WithSharedBoard())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := s.Move(0, 1); err != nil {
		t.Fatalf("Move() rejected: %v", err)
	}
	if board[0][1] {
		t.Error("shared board should reflect the paint transfer")
	}
}

func TestSubscribe(t *testing.T) {
	s := newBlank(t)

	changes := 0
	s.Subscribe(func() { changes++ })

	if err := s.Move(0, 1); err != nil {
		t.Fatalf("Move() rejected: %v", err)
	}
	if changes != 1 {
		t.Errorf("expected 1 notification after a move, got %d", changes)
	}

	// Rejected moves do not notify.
	if err := s.Move(3, 3); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if changes != 1 {
		t.Errorf("rejected move notified listeners, count = %d", changes)
	}

	// Notifications are per instance, not broadcast.
	other := newBlank(t)
	if err := other.Move(1, 0); err != nil {
		t.Fatalf("Move() rejected: %v", err)
	}
	if changes != 1 {
		t.Errorf("another state's move notified this state's listener")
	}
}
