package rules

// TurnState is the side to move.
type TurnState uint8

const (
	BlackToMove TurnState = iota
	WhiteToMove
)

// String returns a human-readable name for the state.
func (s TurnState) String() string {
	if s == WhiteToMove {
		return "White to move"
	}
	return "Black to move"
}

// Turn tracks the active color. Black moves first.
type Turn struct {
	state TurnState
}

// NewTurn creates a turn controller with Black to move.
func NewTurn() *Turn {
	return &Turn{state: BlackToMove}
}

// State returns the current state.
func (t *Turn) State() TurnState {
	return t.state
}

// CurrentPiece returns the color a placement would use.
func (t *Turn) CurrentPiece() Square {
	if t.state == WhiteToMove {
		return White
	}
	return Black
}

// OnMoveApplied passes the turn to the other side.
func (t *Turn) OnMoveApplied() {
	t.toggle()
}

// OnUndo hands the turn back. Call it only when an undo actually removed a move.
func (t *Turn) OnUndo() {
	t.toggle()
}

func (t *Turn) toggle() {
	if t.state == BlackToMove {
		t.state = WhiteToMove
		return
	}
	t.state = BlackToMove
}
