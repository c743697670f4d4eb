package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

// Move log layout
const (
	moveLogChrome    = 6 // Title, panel border, table header and help line
	moveLogMinHeight = 3
)

// MoveLog shows the moves of the current game as a scrollable table.
type MoveLog struct {
	table   table.Model
	entries []core.MoveEntry
	width   int
	height  int
}

// NewMoveLog creates an empty move log sized for a width x height screen.
func NewMoveLog(width, height int) MoveLog {
	m := MoveLog{width: width, height: height}
	m.table = m.createTable()
	return m
}

func (m *MoveLog) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 8},
		{Title: "Square", Width: 8},
		{Title: "Flips", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-moveLogChrome, moveLogMinHeight)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetSize rebuilds the table for a new screen size.
func (m *MoveLog) SetSize(width, height int) {
	m.width, m.height = width, height
	m.table = m.createTable()
	m.updateRows()
}

// SetEntries replaces the logged moves. The newest move is selected.
func (m *MoveLog) SetEntries(entries []core.MoveEntry) {
	m.entries = entries
	m.updateRows()
}

func (m *MoveLog) updateRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			strconv.Itoa(e.Number),
			e.Player,
			e.Square,
			strconv.Itoa(e.Flips),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

// Len returns the number of logged moves.
func (m MoveLog) Len() int {
	return len(m.entries)
}

// Update scrolls the table.
func (m MoveLog) Update(msg tea.Msg) (MoveLog, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the log, or a placeholder when no move was played.
func (m MoveLog) View() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return panelStyle.Render(emptyStyle.Render("No moves yet."))
	}
	return panelStyle.Render(m.table.View())
}
