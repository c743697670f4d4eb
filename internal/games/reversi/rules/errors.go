package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPiece is returned when a color argument is not Black or White.
	ErrInvalidPiece = errors.New("rules: piece must be black or white")

	// ErrOutOfBounds is returned for positions outside the grid, border included.
	ErrOutOfBounds = errors.New("rules: position out of bounds")

	// ErrIllegalMove is returned when a move does not match the legal directions
	// for its square.
	ErrIllegalMove = errors.New("rules: illegal move")

	// ErrInvalidDimensions is returned by NewBoard for unusable grid sizes.
	ErrInvalidDimensions = errors.New("rules: invalid board dimensions")

	// ErrBorderWrite is returned when Set targets a wall cell or tries to
	// write a wall.
	ErrBorderWrite = errors.New("rules: wall border is immutable")
)

// OutOfBoundsError describes a rejected position access.
// errors.Is(err, ErrOutOfBounds) holds for it.
type OutOfBoundsError struct {
	Pos    Position
	Height int
	Width  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("rules: position (x: %d, y: %d) is outside the %dx%d grid",
		e.Pos.X, e.Pos.Y, e.Height, e.Width)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
