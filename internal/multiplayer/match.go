package multiplayer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

// MatchResult describes how a match ended.
type MatchResult struct {
	MatchID MatchID
	Reason  MatchEndReason
	Left    SessionID // Session that disconnected or left
	Moves   int       // Moves on the board when the match stopped
}

type request struct {
	session SessionID
	undo    bool
	pos     rules.Position
}

type departure struct {
	session SessionID
	reason  MatchEndReason
}

// OnlineMatch is a running game between two sessions. Its engine is owned by
// the Run goroutine; placements and undos arrive as requests and are applied
// one at a time, so both players always see the same sequence of positions.
type OnlineMatch struct {
	id     MatchID
	code   string
	gameID string
	engine *rules.Engine

	player1Session SessionHandle
	player2Session SessionHandle

	requests   chan request
	departures chan departure
	seq        uint64

	done     chan struct{}
	doneOnce sync.Once
}

// NewOnlineMatch creates a match. The host session plays Black.
func NewOnlineMatch(
	id MatchID,
	code string,
	gameID string,
	engine *rules.Engine,
	p1Session, p2Session SessionHandle,
) *OnlineMatch {
	return &OnlineMatch{
		id:             id,
		code:           code,
		gameID:         gameID,
		engine:         engine,
		player1Session: p1Session,
		player2Session: p2Session,
		requests:       make(chan request, 64),
		departures:     make(chan departure, 2),
		done:           make(chan struct{}),
	}
}

// ID returns the match identifier.
func (m *OnlineMatch) ID() MatchID {
	return m.id
}

// Code returns the join code the match was created from.
func (m *OnlineMatch) Code() string {
	return m.code
}

// GameID returns the variant identifier.
func (m *OnlineMatch) GameID() string {
	return m.gameID
}

// SideOf returns the side a session plays, or NoPlayer.
func (m *OnlineMatch) SideOf(id SessionID) PlayerID {
	switch id {
	case m.player1Session.ID():
		return Player1
	case m.player2Session.ID():
		return Player2
	default:
		return NoPlayer
	}
}

// Place queues a placement request. It never blocks: when the queue is full
// the request is refused with a MoveRejectedEvent.
func (m *OnlineMatch) Place(session SessionID, pos rules.Position) {
	m.submit(request{session: session, pos: pos})
}

// Undo queues an undo request.
func (m *OnlineMatch) Undo(session SessionID) {
	m.submit(request{session: session, undo: true})
}

func (m *OnlineMatch) submit(r request) {
	select {
	case m.requests <- r:
	default:
		m.sessionFor(r.session).Send(MoveRejectedEvent{MatchID: m.id, Reason: "too many requests, try again"})
	}
}

// PlayerDisconnected ends the match because a session's connection dropped.
func (m *OnlineMatch) PlayerDisconnected(id SessionID) {
	m.depart(id, MatchEndReasonDisconnect)
}

// PlayerLeft ends the match because a player chose to leave.
func (m *OnlineMatch) PlayerLeft(id SessionID) {
	m.depart(id, MatchEndReasonLeft)
}

func (m *OnlineMatch) depart(id SessionID, reason MatchEndReason) {
	select {
	case m.departures <- departure{session: id, reason: reason}:
	default:
	}
}

// StartSnapshot returns the opening position. Call it before Run.
func (m *OnlineMatch) StartSnapshot() rules.Snapshot {
	return m.engine.Snapshot()
}

// Run processes requests until a player leaves or Stop is called. onComplete
// receives the result unless the match was stopped.
func (m *OnlineMatch) Run(onComplete func(MatchResult)) {
	defer m.Stop()

	go m.monitorSessions()

	for {
		select {
		case r := <-m.requests:
			m.handle(r)

		case d := <-m.departures:
			if m.stopped() {
				return
			}
			if onComplete != nil {
				onComplete(MatchResult{
					MatchID: m.id,
					Reason:  d.reason,
					Left:    d.session,
					Moves:   m.engine.Moves(),
				})
			}
			return

		case <-m.done:
			return
		}
	}
}

func (m *OnlineMatch) handle(r request) {
	side := m.SideOf(r.session)
	if side == NoPlayer {
		return
	}

	var (
		status string
		err    error
	)
	if r.undo {
		status, err = m.undo(side)
	} else {
		status, err = m.place(side, r.pos)
	}
	if err != nil {
		m.sessionFor(r.session).Send(MoveRejectedEvent{MatchID: m.id, Reason: err.Error()})
		return
	}

	if len(m.engine.LegalMoves()) == 0 {
		status += fmt.Sprintf("; %s has no legal move", m.engine.Turn())
	}

	m.seq++
	evt := SnapshotEvent{
		MatchID:  m.id,
		Seq:      m.seq,
		Snapshot: m.engine.Snapshot(),
		Status:   status,
	}
	m.player1Session.Send(evt)
	m.player2Session.Send(evt)
}

func (m *OnlineMatch) place(side PlayerID, pos rules.Position) (string, error) {
	if m.engine.Turn() != side.Color() {
		return "", errors.New("not your turn")
	}

	if _, err := m.engine.Play(pos); err != nil {
		if errors.Is(err, rules.ErrIllegalMove) {
			return "", fmt.Errorf("%s is not a legal move", rules.FormatSquare(pos))
		}
		return "", err
	}
	return fmt.Sprintf("%s played %s", side.Color(), rules.FormatSquare(pos)), nil
}

func (m *OnlineMatch) undo(side PlayerID) (string, error) {
	last, ok := m.engine.LastMove()
	if !ok {
		return "", errors.New("nothing to undo")
	}
	if last.Piece != side.Color() {
		return "", fmt.Errorf("only %s can take back %s", last.Piece, rules.FormatSquare(last.Position))
	}

	m.engine.Undo()
	return fmt.Sprintf("%s took back %s", last.Piece, rules.FormatSquare(last.Position)), nil
}

func (m *OnlineMatch) sessionFor(id SessionID) SessionHandle {
	if id == m.player2Session.ID() {
		return m.player2Session
	}
	return m.player1Session
}

func (m *OnlineMatch) monitorSessions() {
	select {
	case <-m.player1Session.Done():
		m.PlayerDisconnected(m.player1Session.ID())
	case <-m.player2Session.Done():
		m.PlayerDisconnected(m.player2Session.ID())
	case <-m.done:
	}
}

func (m *OnlineMatch) stopped() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// Stop ends the match without calling onComplete.
func (m *OnlineMatch) Stop() {
	m.doneOnce.Do(func() {
		close(m.done)
	})
}
