package multiplayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

const eventTimeout = time.Second

// expectEvent reads events from s until one of type T arrives.
func expectEvent[T SessionEvent](t *testing.T, s *ChannelSession) T {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case evt := <-s.Events():
			if want, ok := evt.(T); ok {
				return want
			}
		case <-deadline:
			var zero T
			t.Fatalf("session %s: timed out waiting for %T", s.ID(), zero)
			return zero
		}
	}
}

type matchFixture struct {
	match   *OnlineMatch
	black   *ChannelSession
	white   *ChannelSession
	results chan MatchResult
}

func startMatch(t *testing.T) *matchFixture {
	t.Helper()
	engine, err := rules.NewEngine(10, 10)
	require.NoError(t, err)

	f := &matchFixture{
		black:   NewChannelSession("black", 0),
		white:   NewChannelSession("white", 0),
		results: make(chan MatchResult, 1),
	}
	f.match = NewOnlineMatch("match-test", "ABCDEF", "reversi", engine, f.black, f.white)
	go f.match.Run(func(r MatchResult) { f.results <- r })
	t.Cleanup(f.match.Stop)
	return f
}

func (f *matchFixture) result(t *testing.T) MatchResult {
	t.Helper()
	select {
	case r := <-f.results:
		return r
	case <-time.After(eventTimeout):
		t.Fatal("match did not end")
		return MatchResult{}
	}
}

func TestMatchSides(t *testing.T) {
	f := startMatch(t)

	assert.Equal(t, Player1, f.match.SideOf("black"))
	assert.Equal(t, Player2, f.match.SideOf("white"))
	assert.Equal(t, NoPlayer, f.match.SideOf("stranger"))
	assert.Equal(t, rules.Black, Player1.Color())
	assert.Equal(t, rules.White, Player2.Color())
	assert.Equal(t, "ABCDEF", f.match.Code())
	assert.Equal(t, "reversi", f.match.GameID())
}

func TestMatchPlaceBroadcastsSnapshot(t *testing.T) {
	f := startMatch(t)

	f.match.Place("black", rules.Pos(5, 3))

	for _, s := range []*ChannelSession{f.black, f.white} {
		evt := expectEvent[SnapshotEvent](t, s)
		assert.Equal(t, uint64(1), evt.Seq)
		assert.Equal(t, "Black played e3", evt.Status)
		assert.Equal(t, rules.White, evt.Snapshot.Turn)
		assert.Equal(t, 1, evt.Snapshot.Moves)
		require.NotNil(t, evt.Snapshot.LastMove)
		assert.Equal(t, []rules.Position{rules.Pos(5, 4)}, evt.Snapshot.LastMove.Flipped)
	}
}

func TestMatchRejectsOutOfTurnAndIllegalMoves(t *testing.T) {
	f := startMatch(t)

	f.match.Place("white", rules.Pos(4, 3))
	evt := expectEvent[MoveRejectedEvent](t, f.white)
	assert.Equal(t, "not your turn", evt.Reason)

	f.match.Place("black", rules.Pos(1, 1))
	evt = expectEvent[MoveRejectedEvent](t, f.black)
	assert.Equal(t, "a1 is not a legal move", evt.Reason)

	// Nothing was broadcast: the next accepted move is still Seq 1.
	f.match.Place("black", rules.Pos(5, 3))
	snap := expectEvent[SnapshotEvent](t, f.white)
	assert.Equal(t, uint64(1), snap.Seq)
}

func TestMatchUndoPermissions(t *testing.T) {
	f := startMatch(t)

	f.match.Undo("black")
	rejected := expectEvent[MoveRejectedEvent](t, f.black)
	assert.Equal(t, "nothing to undo", rejected.Reason)

	f.match.Place("black", rules.Pos(5, 3))
	expectEvent[SnapshotEvent](t, f.white)

	f.match.Undo("white")
	rejected = expectEvent[MoveRejectedEvent](t, f.white)
	assert.Equal(t, "only Black can take back e3", rejected.Reason)

	f.match.Undo("black")
	evt := expectEvent[SnapshotEvent](t, f.white)
	assert.Equal(t, "Black took back e3", evt.Status)
	assert.Equal(t, rules.Black, evt.Snapshot.Turn)
	assert.Zero(t, evt.Snapshot.Moves)
	assert.Nil(t, evt.Snapshot.LastMove)
}

func TestMatchEndsWhenPlayerLeaves(t *testing.T) {
	f := startMatch(t)

	f.match.Place("black", rules.Pos(5, 3))
	expectEvent[SnapshotEvent](t, f.black)

	f.match.PlayerLeft("white")
	r := f.result(t)
	assert.Equal(t, MatchID("match-test"), r.MatchID)
	assert.Equal(t, MatchEndReasonLeft, r.Reason)
	assert.Equal(t, SessionID("white"), r.Left)
	assert.Equal(t, 1, r.Moves)
}

func TestMatchEndsWhenSessionCloses(t *testing.T) {
	f := startMatch(t)

	f.black.Close()
	r := f.result(t)
	assert.Equal(t, MatchEndReasonDisconnect, r.Reason)
	assert.Equal(t, SessionID("black"), r.Left)
}

func TestMatchStopSkipsCompletion(t *testing.T) {
	f := startMatch(t)

	f.match.Stop()
	f.match.PlayerLeft("black")

	select {
	case r := <-f.results:
		t.Fatalf("unexpected result after stop: %+v", r)
	case <-time.After(50 * time.Millisecond):
	}
}
