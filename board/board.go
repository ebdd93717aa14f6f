// Package board holds the minefield: the packed tile grid, mine placement
// and the flood-fill reveal.
package board

import "termsweep/types"

// neighbourOffsets lists the eight surrounding cells, row by row.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a fixed-size grid of tiles for a single game.
// It is not safe for concurrent use.
type Board struct {
	preset        Preset
	tiles         []Tile // row-major
	safeRemaining int
	minesPlaced   int
	flags         int
}

// New creates an empty board for the preset. It panics if the preset cannot
// hold its mines next to a safe zone.
func New(p Preset) *Board {
	if err := p.Validate(); err != nil {
		panic(AssertionError{err.Error()})
	}
	return &Board{
		preset:        p,
		tiles:         make([]Tile, p.Cells()),
		safeRemaining: p.Cells() - p.MineCount,
	}
}

func (b *Board) Preset() Preset { return b.preset }
func (b *Board) Width() int { return b.preset.Width }
func (b *Board) Height() int { return b.preset.Height }
func (b *Board) MineCount() int { return b.preset.MineCount }
func (b *Board) Flags() int { return b.flags }
func (b *Board) MinesPlaced() int { return b.minesPlaced }

// SafeRemaining is the number of non-mine tiles still covered.
func (b *Board) SafeRemaining() int { return b.safeRemaining }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.preset.Width && y >= 0 && y < b.preset.Height
}

// At returns the tile at (x, y).
func (b *Board) At(x, y int) Tile {
	return b.tiles[b.index(x, y)]
}

// Neighbours calls fn for every in-bounds cell around (x, y).
func (b *Board) Neighbours(x, y int, fn func(nx, ny int)) {
	for _, d := range neighbourOffsets {
		nx, ny := x+d[0], y+d[1]
		if b.InBounds(nx, ny) {
			fn(nx, ny)
		}
	}
}

// ToggleFlag flips the flag on a covered tile. It returns false and leaves
// the board untouched when the tile is already revealed.
func (b *Board) ToggleFlag(x, y int) bool {
	i := b.index(x, y)
	t := b.tiles[i]
	if t.Revealed() {
		return false
	}
	b.tiles[i] = t.withFlagToggled()
	if b.tiles[i].Flagged() {
		b.flags++
	} else {
		b.flags--
	}
	return true
}

func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		assertf("tile %s outside %dx%d board", types.Pos{X: x, Y: y}, b.preset.Width, b.preset.Height)
	}
	return y*b.preset.Width + x
}
