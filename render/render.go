// Package render turns a board into glyphs and text frames.
package render

import (
	"strings"

	"termsweep/board"
	"termsweep/engine"
	"termsweep/types"
)

// Class is the visual category of a tile.
type Class int

const (
	ClassHidden Class = iota
	ClassFlag
	ClassEmpty
	ClassNumber
	ClassMine       // the mine that ended the game
	ClassHiddenMine // any other mine, shown once the game is over
)

// Cell is what should be drawn for one tile.
type Cell struct {
	Class Class
	Count int // 1-8 for ClassNumber
}

// Glyphs maps classes to runes. Numbers always use their digit.
type Glyphs struct {
	Hidden     rune
	Flag       rune
	Empty      rune
	Mine       rune
	HiddenMine rune
}

// DefaultGlyphs is the plain-text frame alphabet.
var DefaultGlyphs = Glyphs{
	Hidden:     '_',
	Flag:       '$',
	Empty:      ' ',
	Mine:       'X',
	HiddenMine: '!',
}

// Rune returns the glyph for c.
func (g Glyphs) Rune(c Cell) rune {
	switch c.Class {
	case ClassFlag:
		return g.Flag
	case ClassEmpty:
		return g.Empty
	case ClassNumber:
		return rune('0' + c.Count)
	case ClassMine:
		return g.Mine
	case ClassHiddenMine:
		return g.HiddenMine
	}
	return g.Hidden
}

// View is a board as the player should see it.
type View struct {
	Board *board.Board
	// RevealAll shows every tile, used once the game is over.
	RevealAll    bool
	Triggered    types.Pos
	HasTriggered bool
}

// ViewOf returns the view for the game's current state.
func ViewOf(g *engine.Game) View {
	pos, lost := g.Triggered()
	return View{
		Board:        g.Board(),
		RevealAll:    g.State().Terminal(),
		Triggered:    pos,
		HasTriggered: lost,
	}
}

// Cell classifies the tile at (x, y).
func (v View) Cell(x, y int) Cell {
	t := v.Board.At(x, y)
	if v.RevealAll {
		if t.IsMine() {
			switch {
			case v.HasTriggered && v.Triggered == (types.Pos{X: x, Y: y}):
				return Cell{Class: ClassMine}
			case t.Flagged():
				return Cell{Class: ClassFlag}
			}
			return Cell{Class: ClassHiddenMine}
		}
		return contents(t)
	}
	switch {
	case t.Flagged():
		return Cell{Class: ClassFlag}
	case !t.Revealed():
		return Cell{Class: ClassHidden}
	case t.IsMine():
		return Cell{Class: ClassMine}
	}
	return contents(t)
}

func contents(t board.Tile) Cell {
	if t.Kind() == board.KindNumbered {
		return Cell{Class: ClassNumber, Count: t.Count()}
	}
	return Cell{Class: ClassEmpty}
}

// Frame renders the whole board, one bracketed row per line:
//
//	[ _ _ 1   ]
func Frame(v View, g Glyphs) string {
	var sb strings.Builder
	w, h := v.Board.Width(), v.Board.Height()
	for y := 0; y < h; y++ {
		sb.WriteString("[ ")
		for x := 0; x < w; x++ {
			sb.WriteRune(g.Rune(v.Cell(x, y)))
			sb.WriteByte(' ')
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// Report renders the end-of-session text: verdict, play time and the fully
// revealed board. It returns false while the game is still running.
func Report(g *engine.Game, glyphs Glyphs) (string, bool) {
	r, ok := g.Report()
	if !ok {
		return "", false
	}
	return r.String() + "\n" + Frame(ViewOf(g), glyphs), true
}
