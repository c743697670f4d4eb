package reversi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

func TestNewLayoutCentersGrid(t *testing.T) {
	l := NewLayout(80, 24, 10, 10, 2)

	assert.Equal(t, 2, l.CellW)
	assert.Equal(t, core.Point{X: 31, Y: 7}, l.Origin)
	assert.Equal(t, core.NewRect(31, 7, 20, 10), l.Rect())
	assert.Equal(t, 18, l.FooterY())
	assert.True(t, l.Fits())
}

func TestNewLayoutShrinksCells(t *testing.T) {
	l := NewLayout(20, 24, 10, 10, 2)
	assert.Equal(t, 1, l.CellW)
	assert.True(t, l.Fits())

	l = NewLayout(200, 60, 10, 10, 9)
	assert.Equal(t, 4, l.CellW, "cell width is capped")

	l = NewLayout(10, 10, 10, 10, 2)
	assert.Equal(t, 1, l.CellW)
	assert.False(t, l.Fits())
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(80, 24, 10, 10, 2)

	tests := []struct {
		name string
		x, y int
		want rules.Position
		ok   bool
	}{
		{"top-left wall", 31, 7, rules.Pos(0, 0), true},
		{"padding column of a wide cell", 32, 7, rules.Pos(0, 0), true},
		{"first playable cell", 33, 8, rules.Pos(1, 1), true},
		{"e3", 41, 10, rules.Pos(5, 3), true},
		{"left of grid", 30, 7, rules.Position{}, false},
		{"right of grid", 51, 7, rules.Position{}, false},
		{"below grid", 31, 17, rules.Position{}, false},
		{"negative", -1, -1, rules.Position{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, ok := l.CellAt(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestLayoutScreenPosRoundTrip(t *testing.T) {
	l := NewLayout(100, 40, 12, 8, 3)

	for row := range l.Rows {
		for col := range l.Cols {
			pos := rules.Pos(uint(col), uint(row))
			x, y := l.ScreenPos(pos)
			got, ok := l.CellAt(x+l.CellW-1, y)
			require.True(t, ok, "%s", pos)
			assert.Equal(t, pos, got)
		}
	}

	assert.True(t, l.IsInterior(rules.Pos(1, 1)))
	assert.True(t, l.IsInterior(rules.Pos(6, 10)))
	assert.False(t, l.IsInterior(rules.Pos(7, 1)))
	assert.False(t, l.IsInterior(rules.Pos(1, 11)))
	assert.False(t, l.IsInterior(rules.Pos(0, 4)))
}
