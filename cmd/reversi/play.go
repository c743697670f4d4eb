package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/logging"
	"github.com/vovakirdan/tui-reversi/internal/platform/tui"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a two-player game on one terminal. Without a variant the menu
is shown first.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Place a disc (or click a square)
  U            - Take back the last move
  H            - Toggle legal move hints
  R            - Restart
  Tab          - Move log
  Esc          - Back to the menu
  Q/Ctrl+C     - Quit

Examples:
  reversi play
  reversi play reversi-10
  reversi play reversi-custom --config ./12x12.yaml
  reversi play --log-file reversi.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'reversi list' to see available variants.")
			os.Exit(1)
		}
	}

	if err := playLocal(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playLocal alternates between the menu and games until the user quits. An
// empty gameID starts at the menu.
func playLocal(gameID string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	logger, closer, err := localLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := terminalConfig()
	for {
		if gameID == "" {
			result, menuErr := tui.RunMenu(cfg)
			if menuErr != nil {
				return menuErr
			}
			cfg = result.Config
			if result.Quit {
				return nil
			}
			gameID = result.GameID
		}

		game, createErr := registry.Create(gameID)
		if createErr != nil {
			return createErr
		}

		logger.Info("game started", "game", gameID)
		backToMenu, runErr := tui.Run(game, cfg, logger)
		if runErr != nil {
			return fmt.Errorf("running %s: %w", gameID, runErr)
		}
		logger.Info("game closed", "game", gameID, "moves", game.State().Moves)

		if !backToMenu {
			return nil
		}
		gameID = ""
	}
}

// localLogger writes to --log-file when given. The TUI owns the terminal, so
// without a file logs are dropped.
func localLogger() (*log.Logger, io.Closer, error) {
	level, err := logLevel()
	if err != nil {
		return nil, nil, err
	}
	if flagLogFile == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	return logging.OpenFile(flagLogFile, "reversi", level)
}

// terminalConfig sizes the screen from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{ScreenW: width, ScreenH: height}
}
