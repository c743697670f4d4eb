// Package config loads the YAML configuration for the reversi board, its
// display and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

// ReversiConfig contains all configuration for the game and the server.
type ReversiConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Colors  ColorConfig   `yaml:"colors"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig sizes the grid used by the custom variant. Both values count
// the wall ring, so 10x10 gives the usual 8x8 playing area.
type BoardConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// DisplayConfig controls what the board view shows.
type DisplayConfig struct {
	ShowHints    bool `yaml:"show_hints"`
	ShowLastMove bool `yaml:"show_last_move"`
	CellWidth    int  `yaml:"cell_width"` // Screen columns per grid cell, 1-4
}

// ColorConfig names the colors of board elements (see core.ParseColor).
type ColorConfig struct {
	Black    string `yaml:"black"`
	White    string `yaml:"white"`
	Board    string `yaml:"board"`
	Wall     string `yaml:"wall"`
	Cursor   string `yaml:"cursor"`
	Hint     string `yaml:"hint"`
	LastMove string `yaml:"last_move"`
}

// ServerConfig configures `reversi serve`.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	HostKeyPath  string        `yaml:"host_key_path"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	LobbyTimeout time.Duration `yaml:"lobby_timeout"`
}

// Palette is ColorConfig resolved to screen colors.
type Palette struct {
	Black    core.Color
	White    core.Color
	Board    core.Color
	Wall     core.Color
	Cursor   core.Color
	Hint     core.Color
	LastMove core.Color
}

// Validate reports every invalid setting at once.
func (c ReversiConfig) Validate() error {
	var errs []error

	if err := rules.ValidateDimensions(c.Board.Height, c.Board.Width); err != nil {
		errs = append(errs, fmt.Errorf("board: %w", err))
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		errs = append(errs, fmt.Errorf("display.cell_width: %d is not between 1 and 4", c.Display.CellWidth))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Server.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout: negative duration %s", c.Server.IdleTimeout))
	}
	if c.Server.LobbyTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.lobby_timeout: negative duration %s", c.Server.LobbyTimeout))
	}

	return errors.Join(errs...)
}

// Palette resolves the configured color names.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		val  string
		dst  *core.Color
	}{
		{"black", c.Black, &p.Black},
		{"white", c.White, &p.White},
		{"board", c.Board, &p.Board},
		{"wall", c.Wall, &p.Wall},
		{"cursor", c.Cursor, &p.Cursor},
		{"hint", c.Hint, &p.Hint},
		{"last_move", c.LastMove, &p.LastMove},
	}

	var errs []error
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		col, err := core.ParseColor(f.val)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.name, err))
			continue
		}
		*f.dst = col
	}
	return p, errors.Join(errs...)
}
