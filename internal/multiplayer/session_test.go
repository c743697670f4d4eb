package multiplayer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

func TestChannelSessionDropsOldestWhenFull(t *testing.T) {
	s := NewChannelSession("s1", 2)

	s.Send(LobbyErrorEvent{Message: "one"})
	s.Send(LobbyErrorEvent{Message: "two"})
	s.Send(LobbyErrorEvent{Message: "three"})

	require.Len(t, s.Events(), 2)
	assert.Equal(t, LobbyErrorEvent{Message: "two"}, <-s.Events())
	assert.Equal(t, LobbyErrorEvent{Message: "three"}, <-s.Events())
}

func TestChannelSessionClose(t *testing.T) {
	s := NewChannelSession("s1", 0)
	assert.Equal(t, defaultEventBuffer, cap(s.events))

	s.Close()
	s.Close()

	select {
	case <-s.Done():
	default:
		t.Fatal("done channel not closed")
	}

	s.Send(LobbyErrorEvent{Message: "late"})
	assert.Empty(t, s.Events())
}

func TestSessionRegistry(t *testing.T) {
	r := NewSessionRegistry()
	a := NewChannelSession("a", 0)

	r.Register(a)
	r.Register(NewChannelSession("b", 0))
	assert.Equal(t, 2, r.Count())

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	r.Unregister("a")
	_, ok = r.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Count())
}

func TestPlayerSides(t *testing.T) {
	assert.Equal(t, rules.Black, Player1.Color())
	assert.Equal(t, rules.White, Player2.Color())
	assert.Equal(t, rules.Empty, NoPlayer.Color())
	assert.Equal(t, "Player 2", Player2.String())
	assert.Equal(t, "Online", MatchModeOnline.String())
}

func TestIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewSessionID(), NewSessionID())
	assert.NotEqual(t, newMatchID(), newMatchID())
	assert.Contains(t, string(newMatchID()), "match-")
}

func TestMatchEndReasonString(t *testing.T) {
	assert.Equal(t, "Opponent left", MatchEndReasonLeft.String())
	assert.Equal(t, "Server shutting down", MatchEndReasonShutdown.String())
	assert.Equal(t, "Unknown", MatchEndReason(42).String())
}
