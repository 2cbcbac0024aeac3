package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

const (
	cellWidth = 3 // " n " or "[n]" under the cursor
	hudHeight = 2 // title and status lines above the board
)

// numberColors follows the classic palette: 1 blue, 2 green, 3 red, 4 navy,
// 5 maroon, 6 teal, 7 black, 8 gray.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// boxRect returns the framed board area, centered horizontally under the HUD.
func (g *Game) boxRect() core.Rect {
	w := g.board.Cols()*cellWidth + 2
	h := g.board.Rows() + 2
	return core.NewRect((g.screenW-w)/2, hudHeight, w, h)
}

// gridRect returns the area covered by cells, inside the frame.
func (g *Game) gridRect() core.Rect {
	box := g.boxRect()
	return core.NewRect(box.X+1, box.Y+1, g.board.Cols()*cellWidth, g.board.Rows())
}

// CellAt maps a screen position to the cell drawn there.
func (g *Game) CellAt(x, y int) (Cell, bool) {
	grid := g.gridRect()
	if !grid.Contains(x, y) {
		return Cell{}, false
	}
	return Cell{Row: y - grid.Y, Col: (x - grid.X) / cellWidth}, true
}

// checkScreenSize checks if the screen can hold the HUD, the board and the banner.
func (g *Game) checkScreenSize() {
	box := g.boxRect()
	minW := box.W
	minH := hudHeight + box.H + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the round to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	box := g.boxRect()
	g.renderHUD(dst, box)
	dst.DrawBox(box, core.ColorGray)
	g.renderCells(dst)
	g.renderBanner(dst, box.Bottom())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	box := g.boxRect()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", box.W, hudHeight+box.H+1), core.ColorGray)
}

// renderHUD draws the title, flags left and elapsed time.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	dst.DrawTextCentered(0, g.title, core.ColorBrightWhite)

	mines := fmt.Sprintf("Mines: %03d", g.board.FlagsRemaining())
	dst.DrawTextColored(box.X, 1, mines, core.ColorBrightRed)

	clock := fmt.Sprintf("Time: %03d", g.seconds)
	clockX := box.Right() - len(clock)
	if clockX < box.X+len(mines)+1 {
		clockX = box.X + len(mines) + 1
	}
	dst.DrawTextColored(clockX, 1, clock, core.ColorBrightYellow)
}

// renderCells draws every cell from the view grid, bracketing the cursor.
func (g *Game) renderCells(dst *core.Screen) {
	grid := g.gridRect()
	for r := 0; r < g.board.Rows(); r++ {
		for c := 0; c < g.board.Cols(); c++ {
			cell := Cell{Row: r, Col: c}
			x := grid.X + c*cellWidth
			y := grid.Y + r

			glyph, color := glyphFor(g.view[r][c])
			dst.SetColored(x+1, y, glyph, color)

			if cell == g.cursor && !g.finished() {
				dst.SetColored(x, y, '[', core.ColorBrightWhite)
				dst.SetColored(x+2, y, ']', core.ColorBrightWhite)
			}
		}
	}
}

func glyphFor(s CellState) (rune, core.Color) {
	switch s.View {
	case ViewFlagged:
		return '⚑', core.ColorBrightRed
	case ViewRevealed:
		if s.Count == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + s.Count), numberColors[s.Count]
	case ViewMine:
		return '*', core.ColorBrightRed
	case ViewExploded:
		return '*', core.ColorBrightYellow
	case ViewWrongFlag:
		return 'x', core.ColorYellow
	default:
		return '·', core.ColorGray
	}
}

// renderBanner draws the end-of-round notification or a hint under the board.
func (g *Game) renderBanner(dst *core.Screen, y int) {
	switch {
	case g.lost:
		dst.DrawTextCentered(y, "BOOM! You hit a mine. R: new round", core.ColorBrightRed)
	case g.won:
		dst.DrawTextCentered(y, fmt.Sprintf("Cleared in %ds! R: new round", g.seconds), core.ColorBrightGreen)
	case g.board.FirstClick():
		dst.DrawTextCentered(y, "Reveal any cell to start", core.ColorGray)
	}
}
