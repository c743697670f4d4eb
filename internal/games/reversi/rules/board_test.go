package rules

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearInterior empties every playable cell so tests can build positions.
func clearInterior(t *testing.T, b *Board) {
	t.Helper()
	for _, pos := range b.Interior() {
		require.NoError(t, b.Set(pos, Empty))
	}
}

func TestNewBoardInitialLayout(t *testing.T) {
	sizes := []struct{ h, w int }{
		{10, 10},
		{8, 8},
		{4, 4},
		{6, 12},
		{28, 28},
	}

	for _, size := range sizes {
		b, err := NewBoard(size.h, size.w)
		require.NoError(t, err, "%dx%d", size.h, size.w)

		black, white := 0, 0
		for y := range size.h {
			for x := range size.w {
				pos := Pos(uint(x), uint(y))
				sq, err := b.Get(pos)
				require.NoError(t, err)

				if y == 0 || y == size.h-1 || x == 0 || x == size.w-1 {
					assert.Equal(t, Wall, sq, "border cell %s", pos)
					continue
				}

				switch sq {
				case Black:
					black++
				case White:
					white++
				case Empty:
				default:
					t.Errorf("interior cell %s holds %s", pos, sq)
				}
			}
		}

		assert.Equal(t, 2, black, "%dx%d black count", size.h, size.w)
		assert.Equal(t, 2, white, "%dx%d white count", size.h, size.w)

		// The two pieces of each color sit on a diagonal around the center.
		top, left := uint(size.h/2-1), uint(size.w/2-1)
		assertSquare(t, b, Pos(left, top), Black)
		assertSquare(t, b, Pos(left+1, top+1), Black)
		assertSquare(t, b, Pos(left+1, top), White)
		assertSquare(t, b, Pos(left, top+1), White)
	}
}

func TestNewBoardReferenceOpening(t *testing.T) {
	b, err := NewBoard(DefaultHeight, DefaultWidth)
	require.NoError(t, err)

	// Rows and columns as (row, col): Black (4,4), (5,5); White (4,5), (5,4).
	assertSquare(t, b, Pos(4, 4), Black)
	assertSquare(t, b, Pos(5, 5), Black)
	assertSquare(t, b, Pos(5, 4), White)
	assertSquare(t, b, Pos(4, 5), White)
}

func TestNewBoardRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		h, w int
	}{
		{"too small", 3, 10},
		{"zero", 0, 0},
		{"negative", -2, 8},
		{"odd height", 9, 10},
		{"odd width", 10, 7},
		{"too large", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoard(tt.h, tt.w)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
}

func TestBoardGetOutOfBounds(t *testing.T) {
	b, err := NewBoard(10, 10)
	require.NoError(t, err)

	for _, pos := range []Position{Pos(10, 0), Pos(0, 10), Pos(99, 99), Pos(0, 0).Step(North)} {
		_, err := b.Get(pos)
		require.Error(t, err, "position %s", pos)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		var oob *OutOfBoundsError
		require.True(t, errors.As(err, &oob))
		assert.Equal(t, pos, oob.Pos)
	}

	// Border cells are in bounds and read as Wall.
	sq, err := b.Get(Pos(9, 9))
	require.NoError(t, err)
	assert.Equal(t, Wall, sq)
}

func TestBoardSet(t *testing.T) {
	b, err := NewBoard(10, 10)
	require.NoError(t, err)

	require.NoError(t, b.Set(Pos(2, 3), Black))
	assertSquare(t, b, Pos(2, 3), Black)

	assert.ErrorIs(t, b.Set(Pos(0, 3), Black), ErrBorderWrite, "writing a border cell")
	assert.ErrorIs(t, b.Set(Pos(2, 3), Wall), ErrBorderWrite, "writing a wall")
	assert.ErrorIs(t, b.Set(Pos(2, 3), Square(42)), ErrInvalidPiece)
	assert.ErrorIs(t, b.Set(Pos(12, 3), Black), ErrOutOfBounds)

	assertSquare(t, b, Pos(0, 3), Wall)
	assertSquare(t, b, Pos(2, 3), Black)
}

func TestBoardCloneAndEqual(t *testing.T) {
	b, err := NewBoard(8, 8)
	require.NoError(t, err)

	clone := b.Clone()
	assert.True(t, b.Equal(clone))

	require.NoError(t, clone.Set(Pos(1, 1), White))
	assert.False(t, b.Equal(clone))
	assertSquare(t, b, Pos(1, 1), Empty)

	other, err := NewBoard(8, 10)
	require.NoError(t, err)
	assert.False(t, b.Equal(other))
	assert.False(t, b.Equal(nil))
}

func TestBoardString(t *testing.T) {
	b, err := NewBoard(6, 6)
	require.NoError(t, err)

	expected := "######\n" +
		"#....#\n" +
		"#.XO.#\n" +
		"#.OX.#\n" +
		"#....#\n" +
		"######"
	assert.Equal(t, expected, b.String())
}

func TestSquareOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, Empty, Empty.Opponent())
	assert.Equal(t, Wall, Wall.Opponent())
}

func assertSquare(t *testing.T, b *Board, pos Position, want Square) {
	t.Helper()
	got, err := b.Get(pos)
	require.NoError(t, err)
	assert.Equal(t, want, got, "square at %s", pos)
}
