package reversi

import (
	"fmt"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

// Glyphs used on the board.
const (
	GlyphBlack  = '●'
	GlyphWhite  = '○'
	GlyphEmpty  = '·'
	GlyphWall   = '▒'
	GlyphHint   = '+'
	GlyphCursor = '◆'
)

// View is everything DrawBoard needs. Local and online games both build one
// from a rules.Snapshot.
type View struct {
	Snapshot     rules.Snapshot
	Layout       Layout
	Palette      config.Palette
	Cursor       *rules.Position  // Nil hides the cursor
	Hints        []rules.Position // Squares to mark as playable
	ShowLastMove bool
}

// DrawBoard draws the grid with its coordinate labels.
func DrawBoard(dst *core.Screen, v View) {
	board := v.Snapshot.Board
	if board == nil {
		return
	}

	hints := make(map[rules.Position]bool, len(v.Hints))
	for _, p := range v.Hints {
		hints[p] = true
	}

	var last *rules.Position
	if v.ShowLastMove && v.Snapshot.LastMove != nil {
		last = &v.Snapshot.LastMove.Position
	}

	l := v.Layout
	for row := range l.Rows {
		for col := range l.Cols {
			pos := rules.Pos(uint(col), uint(row)) //nolint:gosec // bounded by the grid size
			sq, err := board.Get(pos)
			if err != nil {
				continue
			}

			glyph, color := cellGlyph(sq, v.Palette)
			switch {
			case sq == rules.Empty && hints[pos]:
				glyph, color = GlyphHint, v.Palette.Hint
			case last != nil && *last == pos:
				color = v.Palette.LastMove
			}
			if v.Cursor != nil && *v.Cursor == pos {
				if sq == rules.Empty {
					glyph = GlyphCursor
				}
				color = v.Palette.Cursor
			}

			x, y := l.ScreenPos(pos)
			dst.SetCell(x, y, glyph, color)
			for pad := 1; pad < l.CellW; pad++ {
				if sq == rules.Wall {
					dst.SetCell(x+pad, y, GlyphWall, v.Palette.Wall)
				} else {
					dst.SetCell(x+pad, y, ' ', v.Palette.Board)
				}
			}
		}
	}

	drawLabels(dst, l, v.Palette.Wall)
}

// drawLabels writes column letters above and row numbers left of the
// playable cells, matching rules.FormatSquare.
func drawLabels(dst *core.Screen, l Layout, color core.Color) {
	for col := 1; col < l.Cols-1; col++ {
		x, _ := l.ScreenPos(rules.Pos(uint(col), 0)) //nolint:gosec // bounded by the grid size
		dst.SetCell(x, l.Origin.Y-1, rune('a'+col-1), color)
	}
	for row := 1; row < l.Rows-1; row++ {
		dst.DrawTextColor(l.Origin.X-labelCols, l.Origin.Y+row, fmt.Sprintf("%2d ", row), color)
	}
}

func cellGlyph(sq rules.Square, p config.Palette) (rune, core.Color) {
	switch sq {
	case rules.Black:
		return GlyphBlack, p.Black
	case rules.White:
		return GlyphWhite, p.White
	case rules.Wall:
		return GlyphWall, p.Wall
	default:
		return GlyphEmpty, p.Board
	}
}

// PieceGlyph returns the disc glyph for a color.
func PieceGlyph(sq rules.Square) rune {
	if sq == rules.White {
		return GlyphWhite
	}
	return GlyphBlack
}

// TurnLine describes whose turn it is, e.g. "● Black to move · move 5".
func TurnLine(snap rules.Snapshot) string {
	return fmt.Sprintf("%c %s to move · move %d", PieceGlyph(snap.Turn), snap.Turn, snap.Moves+1)
}
