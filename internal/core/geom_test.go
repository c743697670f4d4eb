package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())

	cx, cy := r.Center()
	assert.Equal(t, 15, cx)
	assert.Equal(t, 17, cy)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi), "Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	assert.True(t, f.Empty())
	assert.False(t, f.Has(ActionUndo))

	f.Set(ActionUndo)
	assert.True(t, f.Has(ActionUndo))
	assert.False(t, f.Empty())

	f.SetClick(3, 4)
	require.NotNil(t, f.Click)
	assert.Equal(t, Point{X: 3, Y: 4}, *f.Click)

	f.Clear()
	assert.True(t, f.Empty())
	assert.Nil(t, f.Click)
}

func TestParseColor(t *testing.T) {
	for _, name := range []string{"bright_cyan", "Bright-Cyan", " BRIGHT_CYAN "} {
		c, err := ParseColor(name)
		require.NoError(t, err, name)
		assert.Equal(t, ColorBrightCyan, c)
	}

	c, err := ParseColor("grey")
	require.NoError(t, err)
	assert.Equal(t, ColorGray, c)
	assert.Equal(t, "gray", c.String())

	_, err = ParseColor("chartreuse")
	assert.Error(t, err)
	assert.Equal(t, "color(200)", Color(200).String())
}
