package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/logging"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// Model is the Bubble Tea model for a local game. It has no tick loop: the
// game advances once per key press or mouse click.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	moveLog    MoveLog
	logger     *log.Logger
	state      core.GameState
	showLog    bool
	quitting   bool
	backToMenu bool
}

// NewModel creates the model and starts a new game. A nil logger discards
// output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(0, 0),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		moveLog: NewMoveLog(cfg.ScreenW, cfg.ScreenH),
		logger:  logger,
	}
	m.help.Width = cfg.ScreenW
	area := m.gameArea()
	m.screen.Resize(area.ScreenW, area.ScreenH)
	m.game.Reset(area)
	m.state = m.game.State()
	return m
}

// gameArea returns the part of the screen above the help view.
func (m Model) gameArea() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(cfg.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
	return cfg
}

// relayout fits the game to the area left by the help view.
func (m *Model) relayout() {
	area := m.gameArea()
	m.screen.Resize(area.ScreenW, area.ScreenH)
	m.game.Resize(area)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.MoveLog):
		m.showLog = !m.showLog
		return m, nil
	}

	if m.showLog {
		if key.Matches(msg, m.keys.Back) {
			m.showLog = false
			return m, nil
		}
		var cmd tea.Cmd
		m.moveLog, cmd = m.moveLog.Update(msg)
		return m, cmd
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}

	in := core.NewInputFrame()
	in.Set(action)
	m.step(in)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showLog || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	in := core.NewInputFrame()
	in.SetClick(msg.X, msg.Y)
	m.step(in)
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	m.moveLog.SetSize(msg.Width, msg.Height)
	return m, nil
}

// step feeds one input frame to the game.
func (m *Model) step(in core.InputFrame) {
	res := m.game.Step(in)
	m.state = res.State
	m.moveLog.SetEntries(m.state.Log)

	m.logger.Debug("step",
		"game", m.game.ID(),
		"turn", m.state.Turn,
		"moves", m.state.Moves,
		"status", m.state.Status,
	)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showLog {
		var b strings.Builder
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(centerText("MOVES - "+m.game.Title(), m.config.ScreenW)))
		b.WriteString("\n\n")
		b.WriteString(m.moveLog.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
		return b.String()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last input.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a local game until the user quits or goes back. It reports
// whether the user asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return ok && m.BackToMenu(), nil
}
