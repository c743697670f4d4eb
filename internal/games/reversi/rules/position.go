package rules

import "fmt"

// Position is a grid coordinate. X is the column, Y is the row, both counted
// from the top-left wall corner.
type Position struct {
	X, Y uint
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y uint) Position {
	return Position{X: x, Y: y}
}

// Step returns the neighbouring position in direction d.
// Stepping left of column 0 or above row 0 wraps to a huge coordinate, which
// every bounds check rejects.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.offset(dx, dy)
}

func (p Position) offset(dx, dy int) Position {
	return Position{
		X: uint(int(p.X) + dx), //nolint:gosec // wrap-around is rejected by bounds checks
		Y: uint(int(p.Y) + dy), //nolint:gosec // wrap-around is rejected by bounds checks
	}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
