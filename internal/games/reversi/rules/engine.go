package rules

import "fmt"

// Engine owns one game: the board, the move history and the turn. Each call
// runs to completion before returning; callers serialize access.
type Engine struct {
	board   *Board
	history *History
	turn    *Turn
}

// NewEngine creates a game on a height x width grid (wall border included).
func NewEngine(height, width int) (*Engine, error) {
	board, err := NewBoard(height, width)
	if err != nil {
		return nil, err
	}
	return &Engine{
		board:   board,
		history: NewHistory(),
		turn:    NewTurn(),
	}, nil
}

// Play places the active color at pos, flips, records the move and passes the
// turn. A square without legal directions is rejected with ErrIllegalMove.
func (e *Engine) Play(pos Position) (MoveRecord, error) {
	piece := e.turn.CurrentPiece()

	dirs, err := LegalDirections(e.board, pos, piece)
	if err != nil {
		return MoveRecord{}, err
	}
	if dirs.IsEmpty() {
		return MoveRecord{}, fmt.Errorf("%w: %s cannot play at %s", ErrIllegalMove, piece, pos)
	}

	rec, err := ApplyMove(e.board, e.history, pos, piece, dirs)
	if err != nil {
		return MoveRecord{}, err
	}
	e.turn.OnMoveApplied()
	return rec, nil
}

// Undo takes back the last move. It returns false, and keeps the turn, when
// there is nothing to undo.
func (e *Engine) Undo() (MoveRecord, bool) {
	rec, ok := UndoMove(e.board, e.history)
	if !ok {
		return MoveRecord{}, false
	}
	e.turn.OnUndo()
	return rec, true
}

// Reset restores the opening position on the same grid size.
func (e *Engine) Reset() {
	board, err := NewBoard(e.board.height, e.board.width)
	if err != nil {
		// The current size was validated when the engine was built.
		return
	}
	e.board = board
	e.history = NewHistory()
	e.turn = NewTurn()
}

// Replay plays a sequence of moves from the current position. It stops at the
// first rejected move and reports its index.
func (e *Engine) Replay(moves []Position) error {
	for i, pos := range moves {
		if _, err := e.Play(pos); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// Board returns a copy of the current board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Square returns the square at pos.
func (e *Engine) Square(pos Position) (Square, error) {
	return e.board.Get(pos)
}

// Turn returns the color to move.
func (e *Engine) Turn() Square {
	return e.turn.CurrentPiece()
}

// Moves returns the number of applied moves.
func (e *Engine) Moves() int {
	return e.history.Len()
}

// History returns the applied moves, oldest first.
func (e *Engine) History() []MoveRecord {
	return e.history.Records()
}

// LastMove returns the most recent move, if any.
func (e *Engine) LastMove() (MoveRecord, bool) {
	return e.history.Last()
}

// LegalMoves returns the positions the active color can play.
func (e *Engine) LegalMoves() []Position {
	//nolint:errcheck // the turn always holds Black or White
	moves, _ := LegalMoves(e.board, e.turn.CurrentPiece())
	return moves
}

// Snapshot captures a read-only view of the game for presentation and for
// sending to remote players.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Board: e.board.Clone(),
		Turn:  e.turn.CurrentPiece(),
		Moves: e.history.Len(),
	}
	if last, ok := e.history.Last(); ok {
		snap.LastMove = &last
	}
	return snap
}

// Snapshot is a copy of the engine state at one point in time.
type Snapshot struct {
	Board    *Board
	Turn     Square
	Moves    int
	LastMove *MoveRecord
}
