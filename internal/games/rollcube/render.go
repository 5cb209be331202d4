package rollcube

import (
	"fmt"

	"github.com/dmvolkov/rollcube/internal/core"
	"github.com/dmvolkov/rollcube/internal/puzzle"
)

const (
	cellW = 4 // board cell width in characters
	cellH = 2 // board cell height in characters

	hudHeight = 2
	netWidth  = 14 // face panel width, incl. margin
)

// boardLayout positions the board and face panel on screen.
type boardLayout struct {
	boardX, boardY int // top-left of the first cell
	boardW, boardH int // board size in characters, without border
	netX, netY     int // top-left of the face panel
	minW, minH     int
}

// layout computes screen positions for the current board size.
func (g *Game) layout() boardLayout {
	l := boardLayout{
		boardW: g.side * cellW,
		boardH: g.side * cellH,
	}
	l.minW = l.boardW + 2 + netWidth
	l.minH = core.Max(l.boardH, 7) + hudHeight + 2

	totalW := l.boardW + 2 + netWidth
	l.boardX = core.Max((g.screenW-totalW)/2, 0) + 1
	l.boardY = hudHeight + 1
	l.netX = l.boardX + l.boardW + 3
	l.netY = l.boardY + 1
	return l
}

// CellAt translates screen coordinates to board coordinates.
func (g *Game) CellAt(x, y int) (row, col int, ok bool) {
	l := g.layout()
	board := core.NewRect(l.boardX, l.boardY, l.boardW, l.boardH)
	if !board.Contains(x, y) {
		return 0, 0, false
	}
	return (y - l.boardY) / cellH, (x - l.boardX) / cellW, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.changed = false

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()

	g.renderHUD(dst, l)
	g.renderBoard(dst, l)
	g.renderFaces(dst, l)

	if g.done {
		g.renderSolved(dst, l)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and move counter.
func (g *Game) renderHUD(dst *core.Screen, l boardLayout) {
	dst.DrawTextColored(l.boardX-1, 0, "Rollcube", core.ColorBrightWhite)

	info := fmt.Sprintf("Moves: %d   Board: %dx%d", g.state.Moves(), g.side, g.side)
	dst.DrawText(l.boardX-1, 1, info)
}

// renderBoard draws the grid, its paint and the cube.
func (g *Game) renderBoard(dst *core.Screen, l boardLayout) {
	dst.DrawBox(core.NewRect(l.boardX-1, l.boardY-1, l.boardW+2, l.boardH+2))

	paintGlyph := glyphOf(g.cfg.Theme.PaintedSquare, '▒')
	blankGlyph := glyphOf(g.cfg.Theme.BlankSquare, '·')
	cubeGlyph := glyphOf(g.cfg.Theme.Cube, '█')

	for r := 0; r < g.side; r++ {
		for c := 0; c < g.side; c++ {
			x := l.boardX + c*cellW
			y := l.boardY + r*cellH

			switch {
			case r == g.state.CubeRow() && c == g.state.CubeCol():
				color := core.ColorCyan
				if g.state.IsPaintedFace(puzzle.FaceBottom) {
					color = core.ColorOrange
				}
				fillCell(dst, x, y, cubeGlyph, color)

			case g.state.IsPaintedSquare(r, c):
				fillCell(dst, x, y, paintGlyph, core.ColorYellow)

			default:
				// A single centered dot reads better than a filled block.
				dst.SetCell(x+cellW/2-1, y+cellH/2, blankGlyph, core.ColorGray)
			}
		}
	}
}

// renderFaces draws the unfolded cube net beside the board.
//
//	    [T]
//	 [L][N][R]
//	    [F]
//	    [B]
func (g *Game) renderFaces(dst *core.Screen, l boardLayout) {
	painted := 0
	for f := 0; f < puzzle.FaceCount; f++ {
		if g.state.IsPaintedFace(f) {
			painted++
		}
	}
	dst.DrawText(l.netX, l.netY-1, fmt.Sprintf("Faces %d/6", painted))

	// Face index -> (column, row) in the net, in 3-wide steps.
	net := [puzzle.FaceCount][2]int{
		puzzle.FaceNear:   {1, 1},
		puzzle.FaceFar:    {1, 2},
		puzzle.FaceLeft:   {0, 1},
		puzzle.FaceRight:  {2, 1},
		puzzle.FaceBottom: {1, 3},
		puzzle.FaceTop:    {1, 0},
	}

	for f := 0; f < puzzle.FaceCount; f++ {
		x := l.netX + net[f][0]*3
		y := l.netY + net[f][1]

		glyph, color := '░', core.ColorGray
		if g.state.IsPaintedFace(f) {
			glyph, color = '▓', core.ColorYellow
		}
		dst.SetCell(x, y, '[', core.ColorDefault)
		dst.SetCell(x+1, y, glyph, color)
		dst.SetCell(x+2, y, ']', core.ColorDefault)
	}
}

// renderSolved draws the finish banner over the board.
func (g *Game) renderSolved(dst *core.Screen, l boardLayout) {
	msg := fmt.Sprintf(" Finished in %d moves. ", g.state.Moves())
	hint := " N: new puzzle  Q: quit "

	w := core.Max(len(msg), len(hint)) + 2
	x := l.boardX + (l.boardW-w)/2
	y := l.boardY + l.boardH/2 - 1

	dst.DrawBox(core.NewRect(x, y, w, 4))
	dst.DrawTextColored(x+(w-len(msg))/2, y+1, msg, core.ColorBrightYellow)
	dst.DrawText(x+(w-len(hint))/2, y+2, hint)
}

// fillCell fills one board cell with a colored glyph.
func fillCell(dst *core.Screen, x, y int, glyph rune, color core.Color) {
	for dy := 0; dy < cellH; dy++ {
		for dx := 0; dx < cellW-1; dx++ {
			dst.SetCell(x+dx, y+dy, glyph, color)
		}
	}
}

// glyphOf returns the first rune of a theme glyph, or the fallback when
// the theme left it empty.
func glyphOf(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
