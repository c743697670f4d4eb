package rules

import (
	"fmt"
	"strings"
)

const (
	// DefaultHeight and DefaultWidth give an 8x8 playable area inside the wall.
	DefaultHeight = 10
	DefaultWidth  = 10

	// MinSize is the smallest grid side: a one-cell wall on both edges around
	// the 2x2 opening.
	MinSize = 4

	// MaxSize bounds the grid so algebraic notation (a-z) can address every
	// playable column.
	MaxSize = 28
)

// Board is a height x width grid of squares whose outermost ring is Wall.
// The wall ring guarantees that every directional scan stops inside the grid.
type Board struct {
	height int
	width  int
	cells  []Square // Row-major
}

// NewBoard creates a board with the wall border and the four-disc opening in
// the center of the playable area.
func NewBoard(height, width int) (*Board, error) {
	if err := ValidateDimensions(height, width); err != nil {
		return nil, err
	}

	b := &Board{
		height: height,
		width:  width,
		cells:  make([]Square, height*width),
	}

	for y := range height {
		for x := range width {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				b.cells[y*width+x] = Wall
			}
		}
	}

	// Seed the opening: cells where the row and column offsets agree are Black.
	top, left := height/2-1, width/2-1
	for dy := range 2 {
		for dx := range 2 {
			piece := White
			if dx == dy {
				piece = Black
			}
			b.cells[(top+dy)*width+left+dx] = piece
		}
	}

	return b, nil
}

// ValidateDimensions checks that a grid of the given size has room for the
// wall ring and a centered opening.
func ValidateDimensions(height, width int) error {
	if height < MinSize || width < MinSize || height > MaxSize || width > MaxSize {
		return fmt.Errorf("%w: %dx%d, each side must be between %d and %d",
			ErrInvalidDimensions, height, width, MinSize, MaxSize)
	}
	if height%2 != 0 || width%2 != 0 {
		return fmt.Errorf("%w: %dx%d, sides must be even to center the opening",
			ErrInvalidDimensions, height, width)
	}
	return nil
}

// Height returns the number of rows, border included.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns, border included.
func (b *Board) Width() int {
	return b.width
}

// Contains reports whether pos lies on the grid, border included.
func (b *Board) Contains(pos Position) bool {
	return pos.X < uint(b.width) && pos.Y < uint(b.height)
}

// IsInterior reports whether pos lies in the playable area.
func (b *Board) IsInterior(pos Position) bool {
	return pos.X >= 1 && pos.Y >= 1 && pos.X < uint(b.width-1) && pos.Y < uint(b.height-1)
}

// Get returns the square at pos.
func (b *Board) Get(pos Position) (Square, error) {
	if !b.Contains(pos) {
		return Empty, b.outOfBounds(pos)
	}
	return b.at(pos), nil
}

// Set writes one playable cell. Wall cells cannot be changed and Wall cannot
// be written.
func (b *Board) Set(pos Position, sq Square) error {
	if !b.Contains(pos) {
		return b.outOfBounds(pos)
	}
	if !b.IsInterior(pos) || sq == Wall {
		return fmt.Errorf("%w: cannot write %s at %s", ErrBorderWrite, sq, pos)
	}
	if sq != Empty && !sq.IsPiece() {
		return fmt.Errorf("%w: %d", ErrInvalidPiece, sq)
	}
	b.set(pos, sq)
	return nil
}

// Interior returns every playable position in row-major order.
func (b *Board) Interior() []Position {
	positions := make([]Position, 0, (b.height-2)*(b.width-2))
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			positions = append(positions, Pos(uint(x), uint(y)))
		}
	}
	return positions
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Square, len(b.cells))
	copy(cells, b.cells)
	return &Board{height: b.height, width: b.width, cells: cells}
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.height != other.height || b.width != other.width {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board one row per line using Square.Rune.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.height * (b.width + 1))
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.width {
			sb.WriteRune(b.cells[y*b.width+x].Rune())
		}
	}
	return sb.String()
}

// at reads a cell without bounds checking. Callers rely on the wall ring to
// stay inside the grid.
func (b *Board) at(pos Position) Square {
	return b.cells[int(pos.Y)*b.width+int(pos.X)] //nolint:gosec // bounded by the wall ring
}

func (b *Board) set(pos Position, sq Square) {
	b.cells[int(pos.Y)*b.width+int(pos.X)] = sq //nolint:gosec // bounded by the wall ring
}

func (b *Board) outOfBounds(pos Position) error {
	return &OutOfBoundsError{Pos: pos, Height: b.height, Width: b.width}
}
