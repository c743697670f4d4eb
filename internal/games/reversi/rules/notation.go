package rules

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSquare converts algebraic notation such as "d3" into a grid position on
// b. Column letters and row numbers count playable cells, so "a1" is the
// top-left cell inside the wall.
func ParseSquare(b *Board, s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Position{}, fmt.Errorf("rules: invalid square %q", s)
	}

	col := s[0]
	if col < 'a' || col > 'z' {
		return Position{}, fmt.Errorf("rules: invalid column in %q", s)
	}

	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Position{}, fmt.Errorf("rules: invalid row in %q", s)
	}

	pos := Pos(uint(col-'a')+1, uint(row)) //nolint:gosec // row checked positive
	if !b.IsInterior(pos) {
		return Position{}, fmt.Errorf("%w: %q is not on the %dx%d board",
			ErrOutOfBounds, s, b.height-2, b.width-2)
	}
	return pos, nil
}

// ParseMoves splits a comma or whitespace separated move list and parses each
// entry with ParseSquare.
func ParseMoves(b *Board, list string) ([]Position, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]Position, 0, len(fields))
	for _, f := range fields {
		pos, err := ParseSquare(b, f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, pos)
	}
	return moves, nil
}

// FormatSquare returns the algebraic name of a playable position, or the raw
// coordinates for wall cells.
func FormatSquare(pos Position) string {
	if pos.X < 1 || pos.Y < 1 || pos.X > 26 {
		return pos.String()
	}
	return fmt.Sprintf("%c%d", 'a'+rune(pos.X-1), pos.Y) //nolint:gosec // X checked <= 26
}
