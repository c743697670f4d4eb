package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
	"github.com/vovakirdan/tui-reversi/internal/multiplayer"
)

func newTestSession(t *testing.T) (SessionModel, *recordingSender) {
	t.Helper()
	useDefaultConfig(t)

	session := multiplayer.NewChannelSession("me", 0)
	t.Cleanup(session.Close)

	sender := &recordingSender{}
	return NewSessionModel(session, sender, testScreen, config.DefaultReversiConfig(), nil), sender
}

func TestSessionLocalGame(t *testing.T) {
	m, _ := newTestSession(t)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "R E V E R S I")

	m, _ = send(t, m, keys("enter")...)
	assert.Contains(t, m.View(), "Black to move")

	m, _ = send(t, m, keys("right", "up", "enter")...)
	assert.Contains(t, m.View(), "White to move")

	// Events for a lobby the session is not in are ignored.
	m, _ = send[SessionModel](t, m, sessionEventMsg{event: multiplayer.LobbyErrorEvent{Message: "stale"}})
	assert.Contains(t, m.View(), "White to move")

	m, _ = send(t, m, keys("esc")...)
	assert.Contains(t, m.View(), "R E V E R S I")
	assert.False(t, m.IsQuitting())

	m, cmd := send(t, m, keys("q")...)
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestSessionOnlineMatch(t *testing.T) {
	m, sender := newTestSession(t)

	// Online entries follow the local ones.
	for range reversi.Variants {
		m, _ = send(t, m, keys("down")...)
	}
	m, _ = send(t, m, keys("enter")...)
	assert.Contains(t, m.View(), "ONLINE REVERSI")

	m, _ = send(t, m, keys("h")...)
	assert.Equal(t, multiplayer.CreateLobbyMsg{SessionID: "me", GameID: "reversi"}, sender.last(t))

	m, cmd := send[SessionModel](t, m, sessionEventMsg{event: multiplayer.LobbyCreatedEvent{Code: "ABC234"}})
	assert.NotNil(t, cmd, "the listener is renewed")
	assert.Contains(t, m.View(), "ABC234")

	engine, err := rules.NewEngine(10, 10)
	require.NoError(t, err)
	m, _ = send[SessionModel](t, m, sessionEventMsg{event: multiplayer.MatchStartedEvent{
		MatchID:  "m1",
		Side:     multiplayer.Player1,
		Code:     "ABC234",
		GameID:   "reversi",
		Snapshot: engine.Snapshot(),
	}})
	assert.Contains(t, m.View(), "you are Black")

	m, _ = send(t, m, keys("right", "up", "enter")...)
	assert.Equal(t, multiplayer.PlaceMsg{SessionID: "me", MatchID: "m1", Pos: rules.Pos(5, 3)}, sender.last(t))

	m, _ = send(t, m, keys("esc")...)
	assert.Equal(t, multiplayer.LeaveMatchMsg{SessionID: "me", MatchID: "m1"}, sender.last(t))
	assert.Contains(t, m.View(), "R E V E R S I")
}

func TestResolveHostKeyPath(t *testing.T) {
	dir := t.TempDir()

	path, err := resolveHostKeyPath(filepath.Join(dir, "keys", "host"))
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "keys"))
	assert.Equal(t, filepath.Join(dir, "keys", "host"), path)

	t.Setenv("HOME", dir)
	path, err = resolveHostKeyPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".reversi", "host_key")))
}
