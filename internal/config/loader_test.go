package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "reversi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	assert.Equal(t, DefaultReversiConfig(), embeddedDefault())
	require.NoError(t, DefaultReversiConfig().Validate())
}

func TestLoadReversiCustomPathOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
board:
  height: 12
  width: 8
display:
  show_hints: false
server:
  lobby_timeout: 90s
`)

	cfg, err := LoadReversi(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Height)
	assert.Equal(t, 8, cfg.Board.Width)
	assert.False(t, cfg.Display.ShowHints)
	assert.Equal(t, 90*time.Second, cfg.Server.LobbyTimeout)

	// Keys the file leaves out keep their defaults.
	def := DefaultReversiConfig()
	assert.True(t, cfg.Display.ShowLastMove)
	assert.Equal(t, def.Display.CellWidth, cfg.Display.CellWidth)
	assert.Equal(t, def.Colors, cfg.Colors)
	assert.Equal(t, def.Server.Address, cfg.Server.Address)
}

func TestLoadReversiCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReversi(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadReversi(writeConfig(t, dir, "board: [not, a, map"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadReversi(writeConfig(t, dir, "board:\n  height: 9\n  width: 10\n"))
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadReversiSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on disk: embedded defaults.
	cfg, err := LoadReversi("")
	require.NoError(t, err)
	assert.Equal(t, DefaultReversiConfig(), cfg)

	// ./configs is used when the user directory has nothing.
	require.NoError(t, os.MkdirAll("configs", 0o755))
	writeConfig(t, "configs", "board:\n  height: 8\n  width: 8\n")
	cfg, err = LoadReversi("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Height)

	// The user directory wins over ./configs.
	userDir := filepath.Join(home, ".reversi", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	writeConfig(t, userDir, "board:\n  height: 14\n  width: 14\n")
	cfg, err = LoadReversi("")
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Board.Height)

	// A broken user file is skipped.
	writeConfig(t, userDir, "board:\n  height: 3\n  width: 3\n")
	cfg, err = LoadReversi("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Height)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ReversiConfig)
		errMsg string
	}{
		{"odd board", func(c *ReversiConfig) { c.Board.Height = 11 }, "board"},
		{"tiny board", func(c *ReversiConfig) { c.Board.Width = 2 }, "board"},
		{"cell width", func(c *ReversiConfig) { c.Display.CellWidth = 0 }, "display.cell_width"},
		{"unknown color", func(c *ReversiConfig) { c.Colors.Hint = "mauve" }, "colors.hint"},
		{"negative timeout", func(c *ReversiConfig) { c.Server.IdleTimeout = -time.Second }, "server.idle_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultReversiConfig()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := DefaultReversiConfig().Colors.Palette()
	require.NoError(t, err)
	assert.Equal(t, core.ColorBrightWhite, p.Black)
	assert.Equal(t, core.ColorGray, p.Wall)

	p, err = ColorConfig{Hint: "blue"}.Palette()
	require.NoError(t, err)
	assert.Equal(t, core.ColorBlue, p.Hint)
	assert.Equal(t, core.ColorDefault, p.Black, "unset names fall back to the default color")
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultReversiConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "lobby_timeout: 5m0s")

	path := writeConfig(t, t.TempDir(), string(data))
	cfg, err := LoadReversi(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultReversiConfig(), cfg)
}
