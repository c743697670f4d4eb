package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

//go:embed defaults/reversi.yaml
var defaultReversiYAML []byte

// DefaultReversiConfig returns the built-in configuration. It matches
// defaults/reversi.yaml and is used when the embedded file cannot be parsed.
func DefaultReversiConfig() ReversiConfig {
	return ReversiConfig{
		Board: BoardConfig{
			Height: rules.DefaultHeight,
			Width:  rules.DefaultWidth,
		},
		Display: DisplayConfig{
			ShowHints:    true,
			ShowLastMove: true,
			CellWidth:    2,
		},
		Colors: ColorConfig{
			Black:    "bright_white",
			White:    "bright_red",
			Board:    "green",
			Wall:     "gray",
			Cursor:   "bright_yellow",
			Hint:     "cyan",
			LastMove: "bright_magenta",
		},
		Server: ServerConfig{
			Address:      "0.0.0.0:23234",
			HostKeyPath:  ".ssh/reversi_ed25519",
			IdleTimeout:  10 * time.Minute,
			LobbyTimeout: 5 * time.Minute,
		},
	}
}
