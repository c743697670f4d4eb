package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionBitsAreDistinct(t *testing.T) {
	seen := DirectionSet(0)
	for _, d := range Directions() {
		assert.Equal(t, 1, DirectionSet(d).Len(), "%s must be a single bit", d)
		assert.False(t, seen.Has(d), "%s shares a bit with another direction", d)
		seen = seen.With(d)
	}

	assert.Len(t, Directions(), 8)
	assert.Equal(t, AllDirections, seen)
	// West and SouthWest once collided; keep them apart.
	assert.NotEqual(t, West, SouthWest)
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{North, 0, -1},
		{NorthEast, 1, -1},
		{East, 1, 0},
		{SouthEast, 1, 1},
		{South, 0, 1},
		{SouthWest, -1, 1},
		{West, -1, 0},
		{NorthWest, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	dx, dy := Direction(0).Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestDirectionSet(t *testing.T) {
	set := NoDirection.With(South).With(West)

	assert.True(t, set.Has(South))
	assert.True(t, set.Has(West))
	assert.False(t, set.Has(SouthWest))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []Direction{South, West}, set.Directions())
	assert.Equal(t, "{S,W}", set.String())

	assert.True(t, NoDirection.IsEmpty())
	assert.Equal(t, "{}", NoDirection.String())
}

func TestPositionStep(t *testing.T) {
	p := Pos(4, 4)
	assert.Equal(t, Pos(4, 3), p.Step(North))
	assert.Equal(t, Pos(5, 5), p.Step(SouthEast))
	assert.Equal(t, Pos(3, 5), p.Step(SouthWest))
}
