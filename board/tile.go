package board

import "fmt"

// Kind is what a tile holds underneath its cover.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindNumbered
	KindMine
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumbered:
		return "numbered"
	case KindMine:
		return "mine"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Tile is one cell packed into a byte:
//
//	bit 0     revealed
//	bit 1     flagged
//	bits 2-3  kind
//	bits 4-6  adjacent mines minus one, numbered tiles only
type Tile uint8

const (
	revealedBit Tile = 0b0000_0001
	flaggedBit  Tile = 0b0000_0010
	kindMask    Tile = 0b0000_1100
	countMask   Tile = 0b0111_0000

	kindShift  = 2
	countShift = 4
)

// Revealed reports whether the tile has been uncovered.
func (t Tile) Revealed() bool { return t&revealedBit != 0 }

// Flagged reports whether the player has marked the tile.
func (t Tile) Flagged() bool { return t&flaggedBit != 0 }

func (t Tile) Kind() Kind { return Kind((t & kindMask) >> kindShift) }

func (t Tile) IsMine() bool { return t.Kind() == KindMine }

// Count returns the number of adjacent mines. It is 0 for empty tiles and
// meaningless for mines.
func (t Tile) Count() int {
	if t.Kind() != KindNumbered {
		return 0
	}
	return int((t&countMask)>>countShift) + 1
}

func (t Tile) String() string {
	state := "hidden"
	switch {
	case t.Revealed():
		state = "revealed"
	case t.Flagged():
		state = "flagged"
	}
	if t.Kind() == KindNumbered {
		return fmt.Sprintf("%s %s(%d)", state, t.Kind(), t.Count())
	}
	return fmt.Sprintf("%s %s", state, t.Kind())
}

func (t Tile) withRevealed() Tile { return (t | revealedBit) &^ flaggedBit }

func (t Tile) withFlagToggled() Tile { return t ^ flaggedBit }

// withMine turns the tile into a mine, dropping any adjacency count.
func (t Tile) withMine() Tile {
	return t&(revealedBit|flaggedBit) | Tile(KindMine)<<kindShift
}

// withAdjacentMine records one more neighbouring mine.
func (t Tile) withAdjacentMine() Tile {
	switch t.Kind() {
	case KindEmpty:
		return t&^(kindMask|countMask) | Tile(KindNumbered)<<kindShift
	case KindNumbered:
		n := t.Count()
		if n >= 8 {
			assertf("tile already has %d adjacent mines", n)
		}
		return t&^countMask | Tile(n)<<countShift
	}
	return t
}
