package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/logging"
	"github.com/vovakirdan/tui-reversi/internal/multiplayer"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// cleanupPeriod is how often the coordinator drops expired lobbies.
const cleanupPeriod = 30 * time.Second

// SSHServer serves Reversi over SSH: every connection gets its own menu, and
// connections can meet in online matches.
type SSHServer struct {
	config      config.ServerConfig
	gameCfg     config.ReversiConfig
	server      *ssh.Server
	sessions    *multiplayer.SessionRegistry
	coordinator *multiplayer.Coordinator
	logger      *log.Logger
}

// NewSSHServer creates an SSH server from the configuration. A nil logger
// discards output.
func NewSSHServer(cfg config.ReversiConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	sessions := multiplayer.NewSessionRegistry()
	coordinator := multiplayer.NewCoordinator(
		multiplayer.CoordinatorConfig{
			LobbyTimeout:  cfg.Server.LobbyTimeout,
			CleanupPeriod: cleanupPeriod,
		},
		reversi.NewEngine,
		sessions,
		logger.WithPrefix("coordinator"),
	)

	srv := &SSHServer{
		config:      cfg.Server,
		gameCfg:     cfg,
		sessions:    sessions,
		coordinator: coordinator,
		logger:      logger,
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.Server.HostKeyPath)
	if err != nil {
		return nil, err
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	}
	if cfg.Server.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Server.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.reversi/host_key and creates the key's
// directory.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".reversi", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	session := multiplayer.NewChannelSession(multiplayer.NewSessionID(), 0)
	s.sessions.Register(session)

	go func() {
		<-sshSession.Context().Done()
		session.Close()
		s.coordinator.Send(multiplayer.SessionDisconnectedMsg{SessionID: session.ID()})
		s.sessions.Unregister(session.ID())
	}()

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}
	model := NewSessionModel(session, s.coordinator, cfg, s.gameCfg,
		s.logger.With("user", sshSession.User(), "session", session.ID()))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)
	s.coordinator.Start()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.coordinator.Stop()
		return fmt.Errorf("ssh server: %w", err)
	}
}

// Shutdown ends all matches and gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.coordinator.Stop()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionEventMsg carries a coordinator event into the Bubble Tea loop.
type sessionEventMsg struct {
	event multiplayer.SessionEvent
}

// listen waits for the next event of a session. It returns nil once the
// session is closed.
func listen(session *multiplayer.ChannelSession) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-session.Events():
			return sessionEventMsg{event: evt}
		case <-session.Done():
			return nil
		}
	}
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLocal
	screenLobby
	screenOnline
)

// SessionModel manages the flow of one SSH connection: menu, then a local
// game, a lobby or an online match, then back to the menu.
type SessionModel struct {
	session     *multiplayer.ChannelSession
	coordinator MessageSender
	config      core.RuntimeConfig
	gameCfg     config.ReversiConfig
	logger      *log.Logger

	screen sessionScreen
	menu   MenuModel
	local  Model
	lobby  OnlineLobbyModel
	online OnlineGameModel

	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(
	session *multiplayer.ChannelSession,
	coordinator MessageSender,
	cfg core.RuntimeConfig,
	gameCfg config.ReversiConfig,
	logger *log.Logger,
) SessionModel {
	if logger == nil {
		logger = logging.Discard()
	}
	return SessionModel{
		session:     session,
		coordinator: coordinator,
		config:      cfg,
		gameCfg:     gameCfg,
		logger:      logger,
		menu:        NewMenuModel(cfg, true),
	}
}

// Init starts listening for coordinator events. One listener runs at a time
// and is renewed after every event.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), listen(m.session))
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if evt, ok := msg.(sessionEventMsg); ok {
		next, cmd := m.route(evt.event)
		return next, tea.Batch(cmd, listen(m.session))
	}
	return m.route(msg)
}

func (m SessionModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLocal:
		return m.updateLocal(msg)
	case screenLobby:
		return m.updateLobby(msg)
	case screenOnline:
		return m.updateOnline(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config, true)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(multiplayer.SessionEvent); ok {
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config()

	if selected.Mode == multiplayer.MatchModeOnline {
		m.lobby = NewOnlineLobbyModel(selected.GameID, selected.Title, m.session.ID(), m.coordinator,
			m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLobby
		m.logger.Debug("entering lobby", "game", selected.GameID)
		return m, m.lobby.Init()
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", selected.GameID, "error", err)
		return m.toMenu()
	}
	m.local = NewModel(game, m.config, m.logger)
	m.screen = screenLocal
	m.logger.Debug("local game started", "game", selected.GameID)
	return m, m.local.Init()
}

func (m SessionModel) updateLocal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(multiplayer.SessionEvent); ok {
		return m, nil
	}

	next, cmd := m.local.Update(msg)
	if local, ok := next.(Model); ok {
		m.local = local
	}

	switch {
	case m.local.BackToMenu():
		return m.toMenu()
	case m.local.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateLobby(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.lobby.Update(msg)
	if lobby, ok := next.(OnlineLobbyModel); ok {
		m.lobby = lobby
	}

	switch {
	case m.lobby.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.lobby.BackToMenu():
		return m.toMenu()
	}

	if start := m.lobby.Started(); start != nil {
		m.online = NewOnlineGameModel(*start, m.session.ID(), m.coordinator, m.config, m.gameCfg)
		m.screen = screenOnline
		m.logger.Info("match joined", "match", start.MatchID, "side", start.Side.Color())
		return m, m.online.Init()
	}
	return m, cmd
}

func (m SessionModel) updateOnline(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.online.Update(msg)
	if online, ok := next.(OnlineGameModel); ok {
		m.online = online
	}

	switch {
	case m.online.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.online.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenLocal:
		return m.local.View()
	case screenLobby:
		return m.lobby.View()
	case screenOnline:
		return m.online.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true if user requested to quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
