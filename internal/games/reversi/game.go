// Package reversi implements the Reversi board game for the terminal
// platform: cursor and mouse input, legal-move hints and undo on top of the
// rules engine.
package reversi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-reversi/internal/config"
	"github.com/vovakirdan/tui-reversi/internal/core"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

// Variant is a registered board size.
type Variant struct {
	ID     string
	Title  string
	Height int // Grid rows, wall included; 0 takes board.height from config
	Width  int // Grid columns, wall included; 0 takes board.width from config
}

// Variants lists the registered games, in menu order.
var Variants = []Variant{
	{ID: "reversi", Title: "Reversi", Height: rules.DefaultHeight, Width: rules.DefaultWidth},
	{ID: "reversi-6", Title: "Reversi 6x6", Height: 8, Width: 8},
	{ID: "reversi-10", Title: "Reversi 10x10", Height: 12, Width: 12},
	{ID: "reversi-custom", Title: "Reversi (configured size)"},
}

// ErrUnknownVariant is returned when no variant has the requested ID.
var ErrUnknownVariant = errors.New("unknown reversi variant")

// LookupVariant returns the variant registered under id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Size returns the grid size of the variant, reading it from cfg for the
// configured-size variant.
func (v Variant) Size(cfg config.ReversiConfig) (height, width int) {
	if v.Height == 0 || v.Width == 0 {
		return cfg.Board.Height, cfg.Board.Width
	}
	return v.Height, v.Width
}

// NewEngine creates a rules engine for the variant id using the current
// configuration. Online matches use it so both players get the same board.
func NewEngine(id string) (*rules.Engine, error) {
	v, ok := LookupVariant(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	h, w := v.Size(loadConfig())
	return rules.NewEngine(h, w)
}

var (
	configMu   sync.RWMutex
	configPath string
	configSet  *config.ReversiConfig
)

// SetConfigPath sets the custom config path used on Reset.
func SetConfigPath(path string) {
	configMu.Lock()
	defer configMu.Unlock()
	configPath = path
	configSet = nil
}

// SetConfig makes every game use cfg instead of loading one on Reset.
func SetConfig(cfg config.ReversiConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configSet = &cfg
}

func loadConfig() config.ReversiConfig {
	configMu.RLock()
	defer configMu.RUnlock()

	if configSet != nil {
		return *configSet
	}
	cfg, err := config.LoadReversi(configPath)
	if err != nil {
		return config.DefaultReversiConfig()
	}
	return cfg
}

// Game is a local two-player game on one terminal.
type Game struct {
	variant Variant
	engine  *rules.Engine
	cfg     config.ReversiConfig
	palette config.Palette
	runtime core.RuntimeConfig
	layout  Layout
	cursor  rules.Position
	hints   bool
	status  string
}

// New creates a game for the variant. It is playable at once; Reset reloads
// the configuration.
func New(v Variant) *Game {
	g := &Game{variant: v}
	g.setup(core.DefaultConfig(), config.DefaultReversiConfig())
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset reloads the configuration and starts a new game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.setup(rt, loadConfig())
}

func (g *Game) setup(rt core.RuntimeConfig, cfg config.ReversiConfig) {
	g.runtime = rt
	g.cfg = cfg
	g.status = ""

	palette, err := cfg.Colors.Palette()
	if err != nil {
		palette, _ = config.DefaultReversiConfig().Colors.Palette() //nolint:errcheck // built-in names are valid
	}
	g.palette = palette

	h, w := g.variant.Size(cfg)
	engine, err := rules.NewEngine(h, w)
	if err != nil {
		g.status = fmt.Sprintf("board %dx%d rejected, using %dx%d", h, w, rules.DefaultHeight, rules.DefaultWidth)
		engine, _ = rules.NewEngine(rules.DefaultHeight, rules.DefaultWidth) //nolint:errcheck // default size is valid
	}
	g.engine = engine
	g.hints = cfg.Display.ShowHints

	board := engine.Board()
	g.cursor = rules.Pos(uint(board.Width()/2-1), uint(board.Height()/2-1)) //nolint:gosec // at least 1
	g.Resize(rt)
	g.checkStalled()
}

// Resize recomputes the layout for a new screen size. The game is untouched.
func (g *Game) Resize(rt core.RuntimeConfig) {
	g.runtime = rt
	board := g.engine.Board()
	g.layout = NewLayout(rt.ScreenW, rt.ScreenH, board.Height(), board.Width(), g.cfg.Display.CellWidth)
}

// Step applies one input event.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionHints):
		g.hints = !g.hints
	case in.Click != nil:
		if pos, ok := g.layout.CellAt(in.Click.X, in.Click.Y); ok && g.layout.IsInterior(pos) {
			g.cursor = pos
			g.place(pos)
		}
	case in.Has(core.ActionConfirm):
		g.place(g.cursor)
	default:
		g.moveCursor(in)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	x, y := int(g.cursor.X), int(g.cursor.Y) //nolint:gosec // cursor stays inside the grid
	switch {
	case in.Has(core.ActionUp):
		y--
	case in.Has(core.ActionDown):
		y++
	case in.Has(core.ActionLeft):
		x--
	case in.Has(core.ActionRight):
		x++
	default:
		return
	}
	x = core.Clamp(x, 1, g.layout.Cols-2)
	y = core.Clamp(y, 1, g.layout.Rows-2)
	g.cursor = rules.Pos(uint(x), uint(y)) //nolint:gosec // clamped to the interior
}

func (g *Game) place(pos rules.Position) {
	piece := g.engine.Turn()
	rec, err := g.engine.Play(pos)
	switch {
	case errors.Is(err, rules.ErrIllegalMove):
		g.status = fmt.Sprintf("%s cannot play %s", piece, rules.FormatSquare(pos))
		return
	case err != nil:
		g.status = err.Error()
		return
	}

	g.status = fmt.Sprintf("%s played %s, %s", piece, rules.FormatSquare(pos), flipCount(len(rec.Flipped)))
	g.checkStalled()
}

func (g *Game) undo() {
	rec, ok := g.engine.Undo()
	if !ok {
		g.status = "nothing to undo"
		return
	}
	g.cursor = rec.Position
	g.status = fmt.Sprintf("took back %s %s", rec.Piece, rules.FormatSquare(rec.Position))
}

func (g *Game) restart() {
	g.engine.Reset()
	g.status = "new game"
	g.checkStalled()
}

// checkStalled reports a side without legal placements. Passing is not part
// of the rules engine, so the only way on is undo or restart.
func (g *Game) checkStalled() {
	if len(g.engine.LegalMoves()) == 0 {
		g.status = fmt.Sprintf("%s has no legal move, press u to undo or r to restart", g.engine.Turn())
	}
}

func flipCount(n int) string {
	if n == 1 {
		return "flipped 1 disc"
	}
	return fmt.Sprintf("flipped %d discs", n)
}

// Render draws the title, the board and the turn and status lines.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(0, g.variant.Title, core.ColorBrightWhite)

	if !g.layout.Fits() {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small", core.ColorYellow)
		return
	}

	snap := g.engine.Snapshot()
	view := View{
		Snapshot:     snap,
		Layout:       g.layout,
		Palette:      g.palette,
		Cursor:       &g.cursor,
		ShowLastMove: g.cfg.Display.ShowLastMove,
	}
	if g.hints {
		view.Hints = g.engine.LegalMoves()
	}
	DrawBoard(dst, view)

	y := g.layout.FooterY()
	dst.DrawTextCentered(y, TurnLine(snap), core.ColorWhite)
	if g.status != "" {
		dst.DrawTextCentered(y+1, g.status, core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	history := g.engine.History()
	log := make([]core.MoveEntry, len(history))
	for i, rec := range history {
		log[i] = core.MoveEntry{
			Number: i + 1,
			Player: rec.Piece.String(),
			Square: rules.FormatSquare(rec.Position),
			Flips:  len(rec.Flipped),
		}
	}

	return core.GameState{
		Turn:    g.engine.Turn().String(),
		Status:  g.status,
		Moves:   g.engine.Moves(),
		Stalled: len(g.engine.LegalMoves()) == 0,
		Log:     log,
	}
}

// Snapshot returns a copy of the engine state.
func (g *Game) Snapshot() rules.Snapshot {
	return g.engine.Snapshot()
}

// Cursor returns the grid position under the cursor.
func (g *Game) Cursor() rules.Position {
	return g.cursor
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
