// Package rules implements the Reversi rule engine: the walled board, legal
// move detection by directional scans, move application with flips, turn
// alternation and history-based undo.
//
// The package has no dependency on the terminal platform. Presentation code
// reads the board and the active color; input code hands it grid positions and
// undo requests.
package rules

// Square is the occupancy state of one grid cell.
type Square uint8

const (
	Empty Square = iota
	Black
	White
	Wall // Border sentinel, never a playable color
)

// Opponent returns the other color for Black and White.
// Empty and Wall are returned unchanged.
func (s Square) Opponent() Square {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return s
	}
}

// IsPiece reports whether s is a color that can be placed (Black or White).
func (s Square) IsPiece() bool {
	return s == Black || s == White
}

// String returns a human-readable name for the square.
func (s Square) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Rune returns the single-character form used by Board.String.
func (s Square) Rune() rune {
	switch s {
	case Black:
		return 'X'
	case White:
		return 'O'
	case Wall:
		return '#'
	default:
		return '.'
	}
}
