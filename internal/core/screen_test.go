package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	for y := range s.Height() {
		for x := range s.Width() {
			assert.Equal(t, ' ', s.Get(x, y), "(%d, %d)", x, y)
		}
	}

	empty := NewScreen(-3, -1)
	assert.Zero(t, empty.Width())
	assert.Zero(t, empty.Height())
	assert.Empty(t, empty.String())
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorDefault, s.GetCell(5, 5).Color)

	s.SetCell(2, 3, 'O', ColorBrightCyan)
	assert.Equal(t, Cell{Rune: 'O', Color: ColorBrightCyan}, s.GetCell(2, 3))

	assert.NotPanics(t, func() {
		s.Set(-1, 0, 'A')
		s.Set(100, 0, 'A')
		s.Set(0, -1, 'A')
		s.Set(0, 100, 'A')
	})
	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	for y := range 3 {
		s.DrawTextColor(0, y, "XXXX", ColorRed)
	}

	s.Clear()

	assert.Equal(t, strings.Repeat(" ", 4), s.Row(1))
	assert.Equal(t, ColorDefault, s.GetCell(0, 0).Color)
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(1, 1, '#', ColorGray)
	s.Set(4, 4, 'Z')

	s.Resize(3, 3)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, Cell{Rune: '#', Color: ColorGray}, s.GetCell(1, 1))

	s.Resize(6, 2)
	assert.Equal(t, 6, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.Equal(t, '#', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 0))
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 2)

	s.DrawText(0, 0, "hello world!")
	assert.Equal(t, "hello world", s.Row(0), "text is clipped at the edge")

	s.DrawTextCentered(1, "●○", ColorYellow)
	assert.Equal(t, '●', s.Get(4, 1))
	assert.Equal(t, '○', s.Get(5, 1))
	assert.Equal(t, ColorYellow, s.GetCell(5, 1).Color)

	assert.Equal(t, "hello world\n    ●○     ", s.String())
	assert.Equal(t, strings.Repeat(" ", 11), s.Row(9))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorBlue)

	assert.Equal(t, "┌──┐\n│  │\n└──┘", s.String())
	assert.Equal(t, ColorBlue, s.GetCell(3, 2).Color)

	// Too small to draw.
	tiny := NewScreen(2, 2)
	tiny.DrawBox(NewRect(0, 0, 1, 1), ColorBlue)
	assert.Equal(t, "  \n  ", tiny.String())
}
