package multiplayer

import "github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"

// SessionEvent is sent from the coordinator or a match to a session.
type SessionEvent interface {
	sessionEvent()
}

// LobbyCreatedEvent is sent to the host when its lobby is open.
type LobbyCreatedEvent struct {
	Code   string
	GameID string
}

func (LobbyCreatedEvent) sessionEvent() {}

// LobbyErrorEvent is sent when a lobby operation fails or a lobby expires.
type LobbyErrorEvent struct {
	Message string
}

func (LobbyErrorEvent) sessionEvent() {}

// LobbyJoinedEvent is sent to both sessions when a joiner arrives.
type LobbyJoinedEvent struct {
	Code       string
	Side       PlayerID // Side this session plays
	OpponentID SessionID
}

func (LobbyJoinedEvent) sessionEvent() {}

// LobbyPlayerLeftEvent is sent to the host when the joiner leaves before the
// match starts.
type LobbyPlayerLeftEvent struct {
	Code string
}

func (LobbyPlayerLeftEvent) sessionEvent() {}

// MatchStartedEvent is sent to both sessions with the opening position.
type MatchStartedEvent struct {
	MatchID  MatchID
	Side     PlayerID
	Code     string
	GameID   string
	Snapshot rules.Snapshot
}

func (MatchStartedEvent) sessionEvent() {}

// SnapshotEvent carries the position after every accepted placement or undo.
type SnapshotEvent struct {
	MatchID  MatchID
	Seq      uint64 // Increases with every accepted request
	Snapshot rules.Snapshot
	Status   string // What changed, e.g. "Black played e3"
}

func (SnapshotEvent) sessionEvent() {}

// MoveRejectedEvent is sent only to the session whose request was refused.
type MoveRejectedEvent struct {
	MatchID MatchID
	Reason  string
}

func (MoveRejectedEvent) sessionEvent() {}

// MatchEndedEvent is sent when a match stops. Matches have no winner: they
// end when a player leaves.
type MatchEndedEvent struct {
	MatchID MatchID
	Reason  MatchEndReason
	Moves   int
}

func (MatchEndedEvent) sessionEvent() {}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonDisconnect MatchEndReason = iota // Opponent's connection dropped
	MatchEndReasonLeft                             // Opponent left the match
	MatchEndReasonHostLeft                         // Host closed the lobby
	MatchEndReasonShutdown                         // Server is stopping
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonDisconnect:
		return "Opponent disconnected"
	case MatchEndReasonLeft:
		return "Opponent left"
	case MatchEndReasonHostLeft:
		return "Host left"
	case MatchEndReasonShutdown:
		return "Server shutting down"
	default:
		return "Unknown"
	}
}

// CoordinatorMessage is sent from a session to the coordinator.
type CoordinatorMessage interface {
	coordinatorMessage()
}

// CreateLobbyMsg requests a new lobby for a variant.
type CreateLobbyMsg struct {
	SessionID SessionID
	GameID    string
}

func (CreateLobbyMsg) coordinatorMessage() {}

// JoinLobbyMsg requests joining an open lobby by code.
type JoinLobbyMsg struct {
	SessionID SessionID
	Code      string
}

func (JoinLobbyMsg) coordinatorMessage() {}

// CancelLobbyMsg closes a hosted lobby.
type CancelLobbyMsg struct {
	SessionID SessionID
	Code      string
}

func (CancelLobbyMsg) coordinatorMessage() {}

// LeaveLobbyMsg leaves a joined lobby.
type LeaveLobbyMsg struct {
	SessionID SessionID
	Code      string
}

func (LeaveLobbyMsg) coordinatorMessage() {}

// LeaveMatchMsg leaves a running match, ending it for both players.
type LeaveMatchMsg struct {
	SessionID SessionID
	MatchID   MatchID
}

func (LeaveMatchMsg) coordinatorMessage() {}

// PlaceMsg asks to place the sender's color at Pos.
type PlaceMsg struct {
	SessionID SessionID
	MatchID   MatchID
	Pos       rules.Position
}

func (PlaceMsg) coordinatorMessage() {}

// UndoMsg asks to take back the last move. Only the player who made it may.
type UndoMsg struct {
	SessionID SessionID
	MatchID   MatchID
}

func (UndoMsg) coordinatorMessage() {}

// SessionDisconnectedMsg is sent when a session's connection ends.
type SessionDisconnectedMsg struct {
	SessionID SessionID
}

func (SessionDisconnectedMsg) coordinatorMessage() {}
