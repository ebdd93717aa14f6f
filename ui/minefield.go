// Package ui specifies custom controls for tview to play Minesweeper in the terminal.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termsweep/config"
	"termsweep/engine"
	"termsweep/render"
	"termsweep/types"
)

// Style slots, see SetConfig.
const (
	styleHidden = iota
	styleRevealed
	styleFlag
	styleMine
	styleHiddenMine
	styleBracket
	styleCursor
	styleNumber // 1-8 follow
)

type MinefieldUI struct {
	Box        *tview.Box
	hint       *tview.TextView
	infoPanel  *GameInfoPanel
	row        *tview.Flex
	app        *tview.Application
	cfg        *config.Config
	game       *engine.Game
	glyphs     render.Glyphs
	styles     []tcell.Color
	onGameOver func(*engine.Game)

	// top-left corner of the last drawn frame, for mouse hit testing
	originX, originY int
}

func NewMinefield(app *tview.Application, c *config.Config, hint *tview.TextView) *MinefieldUI {
	m := &MinefieldUI{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
	}
	m.SetConfig(c)
	m.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if m.game == nil {
			return x, y, 1, 1
		}
		m.originX, m.originY = x, y
		v := render.ViewOf(m.game)
		b := m.game.Board()
		cursor := m.game.Cursor()
		bracket := tcell.StyleDefault.Foreground(m.styles[styleBracket])

		for row := 0; row < b.Height(); row++ {
			screen.SetContent(x, y+row, '[', nil, bracket)
			screen.SetContent(x+1, y+row, ' ', nil, tcell.StyleDefault)
			for col := 0; col < b.Width(); col++ {
				cell := v.Cell(col, row)
				style := m.cellStyle(cell)
				onCursor := !v.RevealAll && col == cursor.X && row == cursor.Y
				if onCursor {
					if m.cfg.Theme.DrawCursorBackground {
						style = style.Background(m.styles[styleCursor])
					} else {
						style = style.Reverse(true)
					}
				}
				sx := x + 2 + col*2
				screen.SetContent(sx, y+row, m.glyphs.Rune(cell), nil, style)
				screen.SetContent(sx+1, y+row, ' ', nil, tcell.StyleDefault)
			}
			screen.SetContent(x+2+b.Width()*2, y+row, ']', nil, bracket)
		}
		return x, y, b.Width()*2 + 3, b.Height()
	})
	m.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick && action != tview.MouseRightClick {
			return action, event
		}
		pos, ok := m.CellAt(event.Position())
		if !ok || m.game == nil {
			return action, event
		}
		m.game.MoveTo(pos)
		if action == tview.MouseLeftClick {
			m.Apply(engine.EventReveal)
		} else {
			m.Apply(engine.EventToggleFlag)
		}
		return action, nil
	})
	return m
}

// NewGame replaces the current game with a fresh one.
func (m *MinefieldUI) NewGame(gameCfg engine.GameConfig) {
	m.game = engine.NewGame(gameCfg)
	if m.row != nil {
		m.row.ResizeItem(m.Box, gameCfg.Preset.Width*2+3, 0)
	}
	if m.infoPanel != nil {
		m.infoPanel.SetPreset(gameCfg.Preset)
	}
	m.refreshHint()
}

// Game returns the running game, or nil before the first NewGame.
func (m *MinefieldUI) Game() *engine.Game {
	return m.game
}

// OnGameOver registers a callback invoked once when the game ends.
func (m *MinefieldUI) OnGameOver(fn func(*engine.Game)) {
	m.onGameOver = fn
}

// Apply forwards an event to the game and refreshes the status views.
func (m *MinefieldUI) Apply(ev engine.Event) bool {
	if m.game == nil {
		return false
	}
	changed := m.game.Apply(ev)
	if changed {
		m.refreshHint()
		if m.game.State().Terminal() && m.onGameOver != nil {
			m.onGameOver(m.game)
		}
	}
	return changed
}

// CellAt converts screen coordinates to a board position.
func (m *MinefieldUI) CellAt(sx, sy int) (types.Pos, bool) {
	if m.game == nil {
		return types.Pos{}, false
	}
	dx := sx - m.originX - 2
	if dx < 0 || dx%2 != 0 {
		return types.Pos{}, false
	}
	p := types.Pos{X: dx / 2, Y: sy - m.originY}
	if !m.game.Board().InBounds(p.X, p.Y) {
		return types.Pos{}, false
	}
	return p, true
}

// RunClock refreshes the elapsed time once a second until done is closed.
func (m *MinefieldUI) RunClock(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			m.app.QueueUpdateDraw(m.refreshHint)
		}
	}
}

func (m *MinefieldUI) SetConfig(c *config.Config) {
	cl := c.Theme.Colors
	m.styles = []tcell.Color{
		tcell.PaletteColor(cl.Hidden),     // 0
		tcell.PaletteColor(cl.Revealed),   // 1
		tcell.PaletteColor(cl.Flag),       // 2
		tcell.PaletteColor(cl.Mine),       // 3
		tcell.PaletteColor(cl.HiddenMine), // 4
		tcell.PaletteColor(cl.Bracket),    // 5
		tcell.PaletteColor(cl.CursorBG),   // 6
	}
	for _, n := range cl.Numbers {
		m.styles = append(m.styles, tcell.PaletteColor(n))
	}
	s := c.Theme.Symbols
	m.glyphs = render.Glyphs{
		Hidden:     s.Hidden,
		Flag:       s.Flag,
		Empty:      s.Empty,
		Mine:       s.Mine,
		HiddenMine: s.HiddenMine,
	}
	m.cfg = c
}

func (m *MinefieldUI) cellStyle(c render.Cell) tcell.Style {
	st := tcell.StyleDefault
	switch c.Class {
	case render.ClassHidden:
		return st.Foreground(m.styles[styleHidden])
	case render.ClassFlag:
		return st.Foreground(m.styles[styleFlag]).Bold(true)
	case render.ClassNumber:
		return st.Foreground(m.styles[styleNumber+c.Count-1]).Bold(true)
	case render.ClassMine:
		return st.Foreground(m.styles[styleMine]).Bold(true)
	case render.ClassHiddenMine:
		return st.Foreground(m.styles[styleHiddenMine])
	}
	return st.Foreground(m.styles[styleRevealed])
}

func (m *MinefieldUI) refreshHint() {
	if m.game == nil {
		return
	}
	if m.infoPanel != nil {
		m.infoPanel.SetGame(m.game)
	}

	var statusLine, controlsLine string
	switch m.game.State() {
	case engine.NotStarted:
		statusLine = "  Reveal any tile to start"
	case engine.InProgress:
		statusLine = fmt.Sprintf("  %d mines left", m.game.MinesLeft())
	default:
		if r, ok := m.game.Report(); ok {
			statusLine = fmt.Sprintf("  %s  %ds", r.Message(), r.Seconds())
		}
	}
	controlsLine = "\n  hjkl/↑↓←→ move   ⏎/space reveal   f flag   q quit"

	m.hint.SetText(statusLine + controlsLine)
}
