package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
	"github.com/vovakirdan/tui-reversi/internal/multiplayer"
)

// OnlineGameModel shows a match run by the coordinator. It never changes the
// board itself: placements and undos go to the match, and the view follows
// the snapshots it broadcasts.
type OnlineGameModel struct {
	matchID   multiplayer.MatchID
	side      multiplayer.PlayerID
	code      string
	sessionID multiplayer.SessionID
	sender    MessageSender

	snapshot rules.Snapshot
	seq      uint64
	cursor   rules.Position
	hints    bool
	status   string
	ended    bool

	gameCfg config.ReversiConfig
	palette config.Palette
	layout  reversi.Layout
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model

	quitting   bool
	backToMenu bool
}

// NewOnlineGameModel creates the view for a match that just started.
func NewOnlineGameModel(
	start multiplayer.MatchStartedEvent,
	sessionID multiplayer.SessionID,
	sender MessageSender,
	cfg core.RuntimeConfig,
	gameCfg config.ReversiConfig,
) OnlineGameModel {
	palette, err := gameCfg.Colors.Palette()
	if err != nil {
		palette, _ = config.DefaultReversiConfig().Colors.Palette() //nolint:errcheck // built-in names are valid
	}

	m := OnlineGameModel{
		matchID:   start.MatchID,
		side:      start.Side,
		code:      start.Code,
		sessionID: sessionID,
		sender:    sender,
		snapshot:  start.Snapshot,
		hints:     gameCfg.Display.ShowHints,
		gameCfg:   gameCfg,
		palette:   palette,
		screen:    core.NewScreen(0, 0),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	m.help.Width = cfg.ScreenW

	board := start.Snapshot.Board
	m.cursor = rules.Pos(uint(board.Width()/2-1), uint(board.Height()/2-1)) //nolint:gosec // at least 1
	m.status = fmt.Sprintf("You play %s", start.Side.Color())
	m.relayout()
	return m
}

func (m *OnlineGameModel) relayout() {
	w := m.config.ScreenW
	h := max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
	m.screen.Resize(w, h)

	board := m.snapshot.Board
	m.layout = reversi.NewLayout(w, h, board.Height(), board.Width(), m.gameCfg.Display.CellWidth)
}

// Init implements tea.Model.
func (m OnlineGameModel) Init() tea.Cmd {
	return nil
}

// Update handles input and match events.
func (m OnlineGameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if pos, ok := m.layout.CellAt(msg.X, msg.Y); ok && m.layout.IsInterior(pos) {
				m.cursor = pos
				m.place()
			}
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()

	case multiplayer.SnapshotEvent:
		// Events for an earlier match, or reordered ones, are stale.
		if msg.MatchID == m.matchID && msg.Seq > m.seq {
			m.seq = msg.Seq
			m.snapshot = msg.Snapshot
			m.status = msg.Status
		}

	case multiplayer.MoveRejectedEvent:
		if msg.MatchID == m.matchID {
			m.status = msg.Reason
		}

	case multiplayer.MatchEndedEvent:
		if msg.MatchID == m.matchID || msg.MatchID == "" {
			m.ended = true
			m.status = msg.Reason.String() + ", press esc for the menu"
		}
	}

	return m, nil
}

func (m OnlineGameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.leave()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionUp:
		m.moveCursor(0, -1)
	case core.ActionDown:
		m.moveCursor(0, 1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)
	case core.ActionConfirm:
		m.place()
	case core.ActionUndo:
		m.undo()
	case core.ActionHints:
		m.hints = !m.hints
	case core.ActionRestart:
		m.status = "restart is not available online"
	}
	return m, nil
}

func (m *OnlineGameModel) moveCursor(dx, dy int) {
	board := m.snapshot.Board
	x, y := int(m.cursor.X)+dx, int(m.cursor.Y)+dy //nolint:gosec // cursor stays inside the grid
	x = core.Clamp(x, 1, board.Width()-2)
	y = core.Clamp(y, 1, board.Height()-2)
	m.cursor = rules.Pos(uint(x), uint(y)) //nolint:gosec // clamped to the interior
}

func (m *OnlineGameModel) myTurn() bool {
	return !m.ended && m.snapshot.Turn == m.side.Color()
}

func (m *OnlineGameModel) place() {
	switch {
	case m.ended:
		return
	case !m.myTurn():
		m.status = fmt.Sprintf("waiting for %s", m.snapshot.Turn)
		return
	}
	m.sender.Send(multiplayer.PlaceMsg{SessionID: m.sessionID, MatchID: m.matchID, Pos: m.cursor})
}

func (m *OnlineGameModel) undo() {
	if m.ended {
		return
	}
	m.sender.Send(multiplayer.UndoMsg{SessionID: m.sessionID, MatchID: m.matchID})
}

// leave ends the match for both players unless it already ended.
func (m *OnlineGameModel) leave() {
	if m.ended {
		return
	}
	m.ended = true
	m.sender.Send(multiplayer.LeaveMatchMsg{SessionID: m.sessionID, MatchID: m.matchID})
}

// Render draws the match onto dst.
func (m OnlineGameModel) Render(dst *core.Screen) {
	dst.Clear()
	title := fmt.Sprintf("Reversi online · you are %s %c · code %s",
		m.side.Color(), reversi.PieceGlyph(m.side.Color()), m.code)
	dst.DrawTextCentered(0, title, core.ColorBrightWhite)

	if !m.layout.Fits() {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small", core.ColorYellow)
		return
	}

	view := reversi.View{
		Snapshot:     m.snapshot,
		Layout:       m.layout,
		Palette:      m.palette,
		Cursor:       &m.cursor,
		ShowLastMove: m.gameCfg.Display.ShowLastMove,
	}
	if m.hints && m.myTurn() {
		view.Hints, _ = rules.LegalMoves(m.snapshot.Board, m.side.Color()) //nolint:errcheck // side colors are pieces
	}
	reversi.DrawBoard(dst, view)

	y := m.layout.FooterY()
	turn := reversi.TurnLine(m.snapshot)
	if m.myTurn() {
		turn += " · your turn"
	}
	dst.DrawTextCentered(y, turn, core.ColorWhite)
	if m.status != "" {
		dst.DrawTextCentered(y+1, m.status, core.ColorYellow)
	}
}

// View renders the match and the help line.
func (m OnlineGameModel) View() string {
	if m.quitting {
		return ""
	}
	m.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the last position received from the match.
func (m OnlineGameModel) Snapshot() rules.Snapshot {
	return m.snapshot
}

// Status returns the status line.
func (m OnlineGameModel) Status() string {
	return m.status
}

// Cursor returns the grid position under the cursor.
func (m OnlineGameModel) Cursor() rules.Position {
	return m.cursor
}

// Ended reports whether the match is over.
func (m OnlineGameModel) Ended() bool {
	return m.ended
}

// IsQuitting returns true if user requested to quit entirely.
func (m OnlineGameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m OnlineGameModel) BackToMenu() bool {
	return m.backToMenu
}
