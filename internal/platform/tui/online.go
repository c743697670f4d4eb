package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-reversi/internal/multiplayer"
)

// joinCodeLength is the length of lobby join codes.
const joinCodeLength = 6

// MessageSender delivers requests to the match coordinator.
type MessageSender interface {
	Send(msg multiplayer.CoordinatorMessage)
}

// OnlineState represents the current state of the online matchmaking flow.
type OnlineState int

const (
	OnlineStateChooseMode    OnlineState = iota // Choose Host or Join
	OnlineStateHostWaiting                      // Hosting, waiting for joiner
	OnlineStateJoinEnterCode                    // Entering join code
	OnlineStateJoinWaiting                      // Waiting to connect to host
)

type lobbyKeyMap struct {
	Host key.Binding
	Join key.Binding
}

var lobbyKeys = lobbyKeyMap{
	Host: key.NewBinding(key.WithKeys("h", "1"), key.WithHelp("h", "host")),
	Join: key.NewBinding(key.WithKeys("j", "2"), key.WithHelp("j", "join")),
}

// OnlineLobbyModel handles hosting or joining a lobby. Coordinator events are
// delivered to Update by the owning SessionModel.
type OnlineLobbyModel struct {
	state       OnlineState
	width       int
	height      int
	keys        KeyMap
	gameID      string
	gameTitle   string
	sessionID   multiplayer.SessionID
	coordinator MessageSender

	lobbyCode string
	codeInput textinput.Model
	notice    string
	isError   bool

	started    *multiplayer.MatchStartedEvent
	backToMenu bool
	quitting   bool
}

// NewOnlineLobbyModel creates a new online lobby model.
func NewOnlineLobbyModel(
	gameID, gameTitle string,
	sessionID multiplayer.SessionID,
	coordinator MessageSender,
	width, height int,
) OnlineLobbyModel {
	ti := textinput.New()
	ti.Placeholder = "ABC234"
	ti.CharLimit = joinCodeLength
	ti.Width = joinCodeLength + 1
	ti.Prompt = ""

	return OnlineLobbyModel{
		state:       OnlineStateChooseMode,
		width:       width,
		height:      height,
		keys:        DefaultKeyMap(),
		gameID:      gameID,
		gameTitle:   gameTitle,
		sessionID:   sessionID,
		coordinator: coordinator,
		codeInput:   ti,
	}
}

// Init initializes the lobby model.
func (m OnlineLobbyModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and coordinator events.
func (m OnlineLobbyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case multiplayer.LobbyCreatedEvent:
		m.lobbyCode = msg.Code
		m.state = OnlineStateHostWaiting
		m.setNotice("", false)

	case multiplayer.LobbyJoinedEvent:
		m.setNotice("Opponent found, starting...", false)

	case multiplayer.LobbyPlayerLeftEvent:
		m.setNotice("Your opponent left the lobby", false)

	case multiplayer.LobbyErrorEvent:
		m.setNotice(msg.Message, true)
		switch m.state {
		case OnlineStateJoinWaiting:
			m.state = OnlineStateJoinEnterCode
			return m, m.codeInput.Focus()
		case OnlineStateHostWaiting:
			m.state = OnlineStateChooseMode
			m.lobbyCode = ""
		}

	case multiplayer.MatchEndedEvent:
		// The host closed the lobby before the match began.
		m.setNotice(msg.Reason.String(), true)
		m.state = OnlineStateChooseMode

	case multiplayer.MatchStartedEvent:
		m.started = &msg
	}

	return m, nil
}

func (m *OnlineLobbyModel) setNotice(text string, isError bool) {
	m.notice = text
	m.isError = isError
}

func (m OnlineLobbyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case OnlineStateChooseMode:
		return m.handleChooseModeKey(msg)
	case OnlineStateHostWaiting:
		return m.handleHostWaitingKey(msg)
	case OnlineStateJoinEnterCode:
		return m.handleJoinCodeKey(msg)
	case OnlineStateJoinWaiting:
		return m.handleJoinWaitingKey(msg)
	}

	return m, nil
}

// leave withdraws from any lobby the session is in.
func (m *OnlineLobbyModel) leave() {
	switch m.state {
	case OnlineStateHostWaiting:
		m.coordinator.Send(multiplayer.CancelLobbyMsg{SessionID: m.sessionID, Code: m.lobbyCode})
	case OnlineStateJoinWaiting:
		m.coordinator.Send(multiplayer.LeaveLobbyMsg{SessionID: m.sessionID, Code: m.codeInput.Value()})
	}
}

func (m OnlineLobbyModel) handleChooseModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, lobbyKeys.Host):
		m.coordinator.Send(multiplayer.CreateLobbyMsg{SessionID: m.sessionID, GameID: m.gameID})
		m.setNotice("Creating lobby...", false)
		return m, nil

	case key.Matches(msg, lobbyKeys.Join):
		m.state = OnlineStateJoinEnterCode
		m.codeInput.Reset()
		m.setNotice("", false)
		return m, m.codeInput.Focus()

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m OnlineLobbyModel) handleHostWaitingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.leave()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Quit):
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleJoinCodeKey edits the code. Letters are code characters here, so
// only esc leaves.
func (m OnlineLobbyModel) handleJoinCodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.codeInput.Blur()
		m.state = OnlineStateChooseMode
		m.setNotice("", false)
		return m, nil

	case tea.KeyEnter:
		code := m.codeInput.Value()
		if len(code) != joinCodeLength {
			m.setNotice(fmt.Sprintf("Codes are %d characters", joinCodeLength), true)
			return m, nil
		}
		m.codeInput.Blur()
		m.state = OnlineStateJoinWaiting
		m.setNotice("", false)
		m.coordinator.Send(multiplayer.JoinLobbyMsg{SessionID: m.sessionID, Code: code})
		return m, nil
	}

	var cmd tea.Cmd
	m.codeInput, cmd = m.codeInput.Update(msg)
	m.codeInput.SetValue(strings.ToUpper(m.codeInput.Value()))
	return m, cmd
}

func (m OnlineLobbyModel) handleJoinWaitingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.leave()
		m.state = OnlineStateJoinEnterCode
		return m, m.codeInput.Focus()
	}
	return m, nil
}

// View renders the current state.
func (m OnlineLobbyModel) View() string {
	if m.quitting {
		return ""
	}

	var lines []string
	switch m.state {
	case OnlineStateChooseMode:
		lines = []string{
			"Choose an option:",
			"",
			"[H] Host a game (you play Black)",
			"[J] Join a game (you play White)",
			"",
			helpStyle.Render("esc: back  •  q: quit"),
		}
	case OnlineStateHostWaiting:
		lines = []string{
			"Share this code with your opponent:",
			"",
			titleStyle.Render(fmt.Sprintf("[ %s ]", m.lobbyCode)),
			"",
			"Waiting for player to join...",
			"",
			helpStyle.Render("esc: cancel  •  q: quit"),
		}
	case OnlineStateJoinEnterCode:
		lines = []string{
			"Enter the game code:",
			"",
			fmt.Sprintf("[ %s ]", m.codeInput.View()),
			"",
			helpStyle.Render("enter: connect  •  esc: back"),
		}
	case OnlineStateJoinWaiting:
		lines = []string{
			fmt.Sprintf("Joining game %s", m.codeInput.Value()),
			"",
			"Please wait...",
			"",
			helpStyle.Render("esc: cancel"),
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("ONLINE "+strings.ToUpper(m.gameTitle), m.width)))
	b.WriteString("\n\n")
	for _, line := range lines {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		style := helpStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString("\n")
		b.WriteString(centerText(style.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// State returns the current online state.
func (m OnlineLobbyModel) State() OnlineState {
	return m.state
}

// Started returns the match start event once the lobby filled, else nil.
func (m OnlineLobbyModel) Started() *multiplayer.MatchStartedEvent {
	return m.started
}

// BackToMenu returns true if user wants to go back to menu.
func (m OnlineLobbyModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user wants to quit entirely.
func (m OnlineLobbyModel) IsQuitting() bool {
	return m.quitting
}

// LobbyCode returns the hosted lobby code.
func (m OnlineLobbyModel) LobbyCode() string {
	return m.lobbyCode
}

// Notice returns the last message shown to the user.
func (m OnlineLobbyModel) Notice() string {
	return m.notice
}
