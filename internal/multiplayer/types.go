// Package multiplayer runs online Reversi matches between two sessions: a
// coordinator pairs sessions through lobbies and join codes, and each match
// owns its engine in a single goroutine.
package multiplayer

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

// PlayerID identifies a side in a match. The lobby host is Player1 and plays
// Black; the joiner is Player2 and plays White.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1
	Player2
)

// Color returns the disc color the side plays.
func (p PlayerID) Color() rules.Square {
	switch p {
	case Player1:
		return rules.Black
	case Player2:
		return rules.White
	default:
		return rules.Empty
	}
}

// String returns a human-readable name for the side.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "nobody"
	}
}

// SessionID uniquely identifies a connected session, e.g. one SSH connection.
type SessionID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// MatchID uniquely identifies a match.
type MatchID string

func newMatchID() MatchID {
	return MatchID("match-" + uuid.NewString())
}

// MatchMode tells the menu whether a game is played on one terminal or
// between two sessions.
type MatchMode int

const (
	// MatchModeLocal is hot-seat play: both colors on one keyboard.
	MatchModeLocal MatchMode = iota

	// MatchModeOnline pairs two sessions through a lobby.
	MatchModeOnline
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeLocal:
		return "Local"
	case MatchModeOnline:
		return "Online"
	default:
		return "Unknown"
	}
}
