package ui

import (
	"github.com/gdamore/tcell/v2"

	"termsweep/engine"
)

// KeyEvent maps a key press to a game event. Unbound keys yield EventNone.
func KeyEvent(event *tcell.EventKey) engine.Event {
	switch event.Key() {
	case tcell.KeyUp:
		return engine.EventMoveUp
	case tcell.KeyDown:
		return engine.EventMoveDown
	case tcell.KeyLeft:
		return engine.EventMoveLeft
	case tcell.KeyRight:
		return engine.EventMoveRight
	case tcell.KeyEnter:
		return engine.EventReveal
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k', 'w':
			return engine.EventMoveUp
		case 'j', 's':
			return engine.EventMoveDown
		case 'h', 'a':
			return engine.EventMoveLeft
		case 'l', 'd':
			return engine.EventMoveRight
		case 'f':
			return engine.EventToggleFlag
		case ' ':
			return engine.EventReveal
		}
	}
	return engine.EventNone
}

// IsQuit reports whether the key abandons the game.
func IsQuit(event *tcell.EventKey) bool {
	return event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q')
}
