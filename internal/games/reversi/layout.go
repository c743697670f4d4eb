package reversi

import (
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

// Screen rows and columns reserved around the grid.
const (
	headerRows = 2 // Title and a blank line
	labelRows  = 1 // Column letters above the grid
	labelCols  = 3 // Row numbers left of the grid
	footerRows = 3 // Blank line, turn line and status line
)

// Layout places a grid on the screen and converts between screen cells and
// grid positions.
type Layout struct {
	Origin core.Point // Screen cell of grid position (0,0)
	CellW  int        // Screen columns per grid cell
	Rows   int        // Grid rows, wall included
	Cols   int        // Grid columns, wall included
	screen core.Point // Screen size the layout was computed for
}

// NewLayout centers a rows x cols grid on a screenW x screenH screen. cellW
// shrinks, down to one column, until the grid fits horizontally.
func NewLayout(screenW, screenH, rows, cols, cellW int) Layout {
	cellW = core.Clamp(cellW, 1, 4)
	for cellW > 1 && labelCols+cols*cellW > screenW {
		cellW--
	}

	boardW := labelCols + cols*cellW
	boardH := labelRows + rows
	top := headerRows + max((screenH-headerRows-footerRows-boardH)/2, 0)
	left := max((screenW-boardW)/2, 0)

	return Layout{
		Origin: core.Point{X: left + labelCols, Y: top + labelRows},
		CellW:  cellW,
		Rows:   rows,
		Cols:   cols,
		screen: core.Point{X: screenW, Y: screenH},
	}
}

// Rect returns the screen area covered by the grid.
func (l Layout) Rect() core.Rect {
	return core.NewRect(l.Origin.X, l.Origin.Y, l.Cols*l.CellW, l.Rows)
}

// Fits reports whether the grid, its labels and the footer fit the screen.
func (l Layout) Fits() bool {
	return l.Rect().Right() <= l.screen.X && l.FooterY()+1 < l.screen.Y
}

// FooterY returns the row of the turn line, one blank row below the grid.
func (l Layout) FooterY() int {
	return l.Rect().Bottom() + 1
}

// ScreenPos returns the screen cell where pos is drawn.
func (l Layout) ScreenPos(pos rules.Position) (x, y int) {
	return l.Origin.X + int(pos.X)*l.CellW, l.Origin.Y + int(pos.Y) //nolint:gosec // grid sides are at most rules.MaxSize
}

// CellAt resolves a screen cell, e.g. a mouse click, to the grid position
// drawn there. Any column of a wide cell resolves to that cell.
func (l Layout) CellAt(x, y int) (rules.Position, bool) {
	if !l.Rect().Contains(x, y) {
		return rules.Position{}, false
	}
	col := (x - l.Origin.X) / l.CellW
	row := y - l.Origin.Y
	return rules.Pos(uint(col), uint(row)), true //nolint:gosec // both checked non-negative by Contains
}

// IsInterior reports whether pos is a playable cell of the laid out grid.
func (l Layout) IsInterior(pos rules.Position) bool {
	return pos.X >= 1 && pos.Y >= 1 && int(pos.X) < l.Cols-1 && int(pos.Y) < l.Rows-1 //nolint:gosec // small grid coordinates
}
