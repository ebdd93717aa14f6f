package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termsweep/board"
	"termsweep/engine"
)

// GameInfoPanel displays the preset, counters and timer alongside the board.
type GameInfoPanel struct {
	box    *tview.TextView
	preset board.Preset
	game   *engine.Game
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetPreset shows the board size before a game exists.
func (p *GameInfoPanel) SetPreset(preset board.Preset) {
	p.preset = preset
	p.refresh()
}

// SetGame updates the panel with the current game.
func (p *GameInfoPanel) SetGame(g *engine.Game) {
	p.game = g
	p.preset = g.Preset()
	p.refresh()
}

// Text returns what the panel currently shows.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func (p *GameInfoPanel) refresh() {
	if p.preset.Name == "" {
		p.box.SetText("")
		return
	}

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %s %dx%d\n", p.preset.Name, p.preset.Width, p.preset.Height)
	text += fmt.Sprintf("[white]Mines:[-:-:-] %d\n", p.preset.MineCount)

	if p.game == nil {
		p.box.SetText(text)
		return
	}

	b := p.game.Board()
	text += fmt.Sprintf("[white]Flags:[-:-:-] %d\n", b.Flags())
	text += fmt.Sprintf("[white]Left:[-:-:-]  %d\n", p.game.MinesLeft())
	text += fmt.Sprintf("[white]Safe:[-:-:-]  %d\n", b.SafeRemaining())
	text += fmt.Sprintf("[white]Time:[-:-:-]  %ds\n", int64(p.game.Elapsed().Seconds()))

	text += "\n"
	switch p.game.State() {
	case engine.Won:
		text += "[green::b]Cleared![-:-:-]\n"
	case engine.Lost:
		text += "[red::b]Boom.[-:-:-]\n"
	default:
		text += fmt.Sprintf("[dimgray]%s[-:-:-]\n", p.game.State())
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
// The board column is sized to the preset on every NewGame; the panel takes
// whatever width is left.
func CreateGameLayout(field *MinefieldUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewGameInfoPanel()
	field.infoPanel = infoPanel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(field.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 0, 1, false)
	field.row = boardRow

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 2, 0, false) // Compact: just 2 rows

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}
