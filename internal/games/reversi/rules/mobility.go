package rules

import "fmt"

// LegalDirections returns the directions in which placing piece at pos would
// flip at least one opponent disc. An occupied square, wall included, yields
// NoDirection.
func LegalDirections(b *Board, pos Position, piece Square) (DirectionSet, error) {
	if !piece.IsPiece() {
		return NoDirection, fmt.Errorf("%w: got %s", ErrInvalidPiece, piece)
	}

	sq, err := b.Get(pos)
	if err != nil {
		return NoDirection, err
	}
	if sq != Empty {
		return NoDirection, nil
	}

	set := NoDirection
	for _, c := range compass {
		if flanks(b, pos, c.dx, c.dy, piece) {
			set = set.With(c.dir)
		}
	}
	return set, nil
}

// flanks walks from pos along (dx, dy) over a run of opponent discs and
// reports whether the run is closed by piece. Empty, Wall or a zero-length
// run make the direction illegal.
func flanks(b *Board, pos Position, dx, dy int, piece Square) bool {
	opponent := piece.Opponent()

	cur := pos.offset(dx, dy)
	if b.at(cur) != opponent {
		return false
	}
	for b.at(cur) == opponent {
		cur = cur.offset(dx, dy)
	}
	return b.at(cur) == piece
}

// LegalMoves returns every playable position where piece has at least one
// legal direction, in row-major order.
func LegalMoves(b *Board, piece Square) ([]Position, error) {
	if !piece.IsPiece() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidPiece, piece)
	}

	var moves []Position
	for _, pos := range b.Interior() {
		dirs, err := LegalDirections(b, pos, piece)
		if err != nil {
			return nil, err
		}
		if !dirs.IsEmpty() {
			moves = append(moves, pos)
		}
	}
	return moves, nil
}

// HasLegalMove reports whether piece can play anywhere on the board.
func HasLegalMove(b *Board, piece Square) bool {
	moves, err := LegalMoves(b, piece)
	return err == nil && len(moves) > 0
}
