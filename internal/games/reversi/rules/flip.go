package rules

import "fmt"

// MoveRecord holds everything needed to reverse one applied move.
type MoveRecord struct {
	Position Position
	Piece    Square
	Flipped  []Position // Flipped discs, grouped by direction in compass order
}

// History is the stack of applied moves. Its length always equals the number
// of moves currently on the board.
type History struct {
	records []MoveRecord
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Len returns the number of applied moves.
func (h *History) Len() int {
	return len(h.records)
}

// Last returns the most recent record.
func (h *History) Last() (MoveRecord, bool) {
	if len(h.records) == 0 {
		return MoveRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// Records returns a copy of the stack, oldest first.
func (h *History) Records() []MoveRecord {
	records := make([]MoveRecord, len(h.records))
	copy(records, h.records)
	return records
}

func (h *History) push(rec MoveRecord) {
	h.records = append(h.records, rec)
}

func (h *History) pop() (MoveRecord, bool) {
	rec, ok := h.Last()
	if !ok {
		return MoveRecord{}, false
	}
	h.records = h.records[:len(h.records)-1]
	return rec, true
}

// ApplyMove places piece at pos and flips every opponent run in dirs.
// dirs must be exactly the set LegalDirections reports for the same board,
// position and piece. All checks run before the board is touched, so a
// rejected call leaves board and history unchanged.
func ApplyMove(b *Board, h *History, pos Position, piece Square, dirs DirectionSet) (MoveRecord, error) {
	if !piece.IsPiece() {
		return MoveRecord{}, fmt.Errorf("%w: got %s", ErrInvalidPiece, piece)
	}
	if dirs.IsEmpty() {
		return MoveRecord{}, fmt.Errorf("%w: no direction given for %s", ErrIllegalMove, pos)
	}

	legal, err := LegalDirections(b, pos, piece)
	if err != nil {
		return MoveRecord{}, err
	}
	if legal != dirs {
		return MoveRecord{}, fmt.Errorf("%w: %s at %s flips %s, not %s",
			ErrIllegalMove, piece, pos, legal, dirs)
	}

	rec := MoveRecord{Position: pos, Piece: piece}
	b.set(pos, piece)

	opponent := piece.Opponent()
	for _, c := range compass {
		if !dirs.Has(c.dir) {
			continue
		}
		// Stop at the anchor: it already holds piece and is not part of the run.
		for cur := pos.offset(c.dx, c.dy); b.at(cur) == opponent; cur = cur.offset(c.dx, c.dy) {
			b.set(cur, piece)
			rec.Flipped = append(rec.Flipped, cur)
		}
	}

	h.push(rec)
	return rec, nil
}

// UndoMove reverses the most recent move. With an empty history it does
// nothing and returns false.
func UndoMove(b *Board, h *History) (MoveRecord, bool) {
	rec, ok := h.pop()
	if !ok {
		return MoveRecord{}, false
	}

	b.set(rec.Position, Empty)
	for _, pos := range rec.Flipped {
		if sq := b.at(pos); sq.IsPiece() {
			b.set(pos, sq.Opponent())
		}
	}
	return rec, true
}
