package rules

import (
	"math/bits"
	"strings"
)

// Direction is one of the eight compass directions. Every direction owns a
// distinct bit so that a set of directions fits in a DirectionSet.
type Direction uint8

const (
	North Direction = 1 << iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// DirectionSet is a bitmask of directions.
type DirectionSet uint8

const (
	// NoDirection is the empty set: no legal move at a square.
	NoDirection DirectionSet = 0

	// AllDirections has all eight bits set.
	AllDirections DirectionSet = 0xFF
)

// compass lists every direction with its step on the grid.
// Rows grow southwards, columns grow eastwards.
var compass = [8]struct {
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

// Directions returns all eight directions in compass order starting at North.
func Directions() []Direction {
	dirs := make([]Direction, 0, len(compass))
	for _, c := range compass {
		dirs = append(dirs, c.dir)
	}
	return dirs
}

// Delta returns the column and row step for the direction.
// An unknown direction yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	for _, c := range compass {
		if c.dir == d {
			return c.dx, c.dy
		}
	}
	return 0, 0
}

// String returns the compass abbreviation.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&DirectionSet(d) != 0
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | DirectionSet(d)
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// IsEmpty reports whether the set holds no direction.
func (s DirectionSet) IsEmpty() bool {
	return s == NoDirection
}

// Directions returns the members of the set in compass order.
func (s DirectionSet) Directions() []Direction {
	var dirs []Direction
	for _, c := range compass {
		if s.Has(c.dir) {
			dirs = append(dirs, c.dir)
		}
	}
	return dirs
}

// String formats the set as "{N,SE}".
func (s DirectionSet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
