package ui

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsweep/board"
	"termsweep/config"
	"termsweep/engine"
	"termsweep/types"
)

func TestMain(m *testing.M) {
	engine.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestField(t *testing.T) (*MinefieldUI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 20)

	c := config.DefaultConfig
	hint := tview.NewTextView()
	field := NewMinefield(nil, &c, hint)
	CreateGameLayout(field, hint)
	field.Box.SetRect(0, 0, 40, 12)
	return field, screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestDrawHiddenBoard(t *testing.T) {
	field, screen := newTestField(t)
	field.NewGame(engine.GameConfig{Preset: board.Beginner, Seed: 3})
	field.Box.Draw(screen)

	for y := 0; y < 9; y++ {
		assert.Equal(t, "[ _ _ _ _ _ _ _ _ _ ]", rowText(screen, y, 21), "row %d", y)
	}

	_, _, style, _ := screen.GetContent(2+4*2, 4)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(config.DefaultTheme.Colors.CursorBG), bg)
}

func TestApplyRevealUpdatesViews(t *testing.T) {
	field, screen := newTestField(t)
	field.NewGame(engine.GameConfig{Preset: board.Expert, Seed: 3})
	assert.Contains(t, field.hint.GetText(true), "Reveal any tile")

	require.True(t, field.Apply(engine.EventReveal))
	assert.Equal(t, engine.InProgress, field.Game().State())
	assert.Contains(t, field.hint.GetText(true), "99 mines left")
	assert.Contains(t, field.infoPanel.Text(), "expert 30x16")

	field.Box.Draw(screen)
	r, _, _, _ := screen.GetContent(2+15*2, 8)
	assert.Equal(t, ' ', r, "first reveal opens an empty tile")
}

func TestGameOverCallback(t *testing.T) {
	field, _ := newTestField(t)
	field.NewGame(engine.GameConfig{Preset: board.Expert, Seed: 11})
	calls := 0
	field.OnGameOver(func(g *engine.Game) {
		calls++
		assert.Equal(t, engine.Lost, g.State())
	})

	require.True(t, field.Apply(engine.EventReveal))
	b := field.Game().Board()
	var mine types.Pos
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y).IsMine() {
				mine = types.Pos{X: x, Y: y}
			}
		}
	}
	field.Game().MoveTo(mine)
	require.True(t, field.Apply(engine.EventReveal))
	assert.False(t, field.Apply(engine.EventReveal))
	assert.Equal(t, 1, calls)
	assert.Contains(t, field.hint.GetText(true), "Game Over, you clicked a mine!")
}

func TestExpertBoardFitsNarrowTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)

	c := config.DefaultConfig
	hint := tview.NewTextView()
	field := NewMinefield(nil, &c, hint)
	pages := tview.NewPages()
	pages.SetBorder(true)
	pages.AddPage("gameview", CreateGameLayout(field, hint), true, true)

	field.NewGame(engine.GameConfig{Preset: board.Expert, Seed: 3})
	pages.SetRect(0, 0, 80, 24)
	pages.Draw(screen)

	want := "[" + strings.Repeat(" _", 30) + " ]"
	for y := 1; y <= 16; y++ {
		assert.Equal(t, want, string([]rune(rowText(screen, y, 64))[1:]), "row %d", y)
	}
	assert.Contains(t, string([]rune(rowText(screen, 1, 80))[64:]), "Game Info")

	pos, ok := field.CellAt(1+2+29*2, 1)
	assert.True(t, ok)
	assert.Equal(t, types.Pos{X: 29, Y: 0}, pos)
}

func TestCellAt(t *testing.T) {
	field, screen := newTestField(t)
	_, ok := field.CellAt(2, 0)
	assert.False(t, ok, "no game yet")

	field.NewGame(engine.GameConfig{Preset: board.Beginner})
	field.Box.Draw(screen)

	pos, ok := field.CellAt(2, 0)
	assert.True(t, ok)
	assert.Equal(t, types.Pos{X: 0, Y: 0}, pos)

	pos, ok = field.CellAt(2+8*2, 8)
	assert.True(t, ok)
	assert.Equal(t, types.Pos{X: 8, Y: 8}, pos)

	for _, p := range [][2]int{{0, 0}, {3, 0}, {2 + 9*2, 0}, {2, 9}} {
		_, ok := field.CellAt(p[0], p[1])
		assert.False(t, ok, "screen %v", p)
	}
}

func TestParseSeed(t *testing.T) {
	for _, tc := range []struct {
		text string
		seed uint64
		ok   bool
	}{
		{"", 0, true},
		{" 42 ", 42, true},
		{"18446744073709551615", 18446744073709551615, true},
		{"18446744073709551616", 0, false},
		{"99999999999999999999999", 0, false},
	} {
		seed, ok := parseSeed(tc.text)
		assert.Equal(t, tc.ok, ok, "%q", tc.text)
		assert.Equal(t, tc.seed, seed, "%q", tc.text)
	}
}

func TestGameSetupConfig(t *testing.T) {
	setup := NewGameSetup(board.Expert, func(engine.GameConfig) {}, func() {})
	assert.Equal(t, engine.GameConfig{Preset: board.Expert}, setup.Config())
	assert.NotNil(t, setup.Form())
}

func TestInfoPanel(t *testing.T) {
	panel := NewGameInfoPanel()
	assert.Equal(t, "", panel.Text())

	panel.SetPreset(board.Intermediate)
	assert.Contains(t, panel.Text(), "intermediate 16x16")
	assert.Contains(t, panel.Text(), "Mines: 40")

	g := engine.NewGame(engine.GameConfig{Preset: board.Intermediate, Seed: 5})
	g.ToggleFlag()
	panel.SetGame(g)
	assert.Contains(t, panel.Text(), "Flags: 1")
	assert.Contains(t, panel.Text(), "Left:  39")
	assert.Contains(t, panel.Text(), "not started")
}
