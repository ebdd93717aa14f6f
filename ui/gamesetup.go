package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rivo/tview"

	"termsweep/board"
	"termsweep/engine"
)

// GameSetupUI provides a form for picking a preset before a game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	preset board.Preset
	seed   uint64
}

// NewGameSetup creates a new game setup form starting on the given preset.
func NewGameSetup(initial board.Preset, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		preset:   initial,
	}

	presets := board.Presets()
	labels := make([]string, len(presets))
	selected := 0
	for i, p := range presets {
		labels[i] = fmt.Sprintf("%-12s %2dx%-2d %3d mines", p.Name, p.Width, p.Height, p.MineCount)
		if p == initial {
			selected = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Difficulty", labels, selected, func(option string, index int) {
		if index >= 0 && index < len(presets) {
			setup.preset = presets[index]
		}
	})

	form.AddInputField("Seed (blank = clock)", "", 20, func(text string, lastChar rune) bool {
		if lastChar < '0' || lastChar > '9' {
			return false
		}
		_, ok := parseSeed(text)
		return ok
	}, func(text string) {
		setup.seed, _ = parseSeed(text)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetLabelColor(MenuColors.Label)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently selected in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{Preset: s.preset, Seed: s.seed}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// parseSeed reads the seed field. Blank means seed from the clock; anything
// that is not a uint64 is rejected.
func parseSeed(text string) (uint64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
