// reversi plays Reversi in the terminal, locally or over SSH.
//
// Usage:
//
//	reversi list                  - List available board variants
//	reversi play [variant]        - Play a variant, or pick one from the menu
//	reversi menu                  - Start the variant picker
//	reversi serve                 - Start SSH server for online matches
//	reversi show [variant]        - Print a position reached by a move list
//	reversi config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.reversi/configs/reversi.yaml)
//	--log-level <level> - debug, info, warn or error (default: $LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reversi",
	Short: "Reversi in your terminal",
	Long: `Reversi (Othello) for the terminal. Play against a friend on one
keyboard, or host an SSH server where players meet with a join code.

Available commands:
  list     - Show all board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for online matches
  show     - Print the position after a list of moves
  config   - Print the effective configuration

Examples:
  reversi list
  reversi play reversi-6
  reversi serve --address :2222
  reversi show --moves e3,f5,f6`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration named by --config and hands it to the
// game package so every variant uses the same settings.
func loadConfig() (config.ReversiConfig, error) {
	cfg, err := config.LoadReversi(flagConfig)
	if err != nil {
		return cfg, err
	}
	reversi.SetConfig(cfg)
	return cfg, nil
}

func logLevel() (log.Level, error) {
	return logging.LevelFromEnv(flagLogLevel)
}
