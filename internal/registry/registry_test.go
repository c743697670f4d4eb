package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string                { return g.id }
func (g *stubGame) Title() string             { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)  { g.steps = 0 }
func (g *stubGame) Resize(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)       {}
func (g *stubGame) State() core.GameState     { return core.GameState{Moves: g.steps} }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("missing"))

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b"})

	idxA, idxB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			idxA = i
		case "stub-b":
			idxB = i
		}
	}
	assert.Less(t, idxA, idxB, "List keeps registration order")

	g, err := Create("stub-b")
	require.NoError(t, err)
	assert.Equal(t, "Stub stub-b", g.Title())

	// Each Create returns a fresh instance.
	g.Step(core.NewInputFrame())
	g2, err := Create("stub-b")
	require.NoError(t, err)
	assert.Equal(t, 1, g.State().Moves)
	assert.Equal(t, 0, g2.State().Moves)

	_, err = Create("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	assert.Panics(t, func() {
		Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	})
}
