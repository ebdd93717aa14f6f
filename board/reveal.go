package board

import "termsweep/types"

// Outcome describes what a single reveal did.
type Outcome struct {
	Revealed int  // safe tiles uncovered by this call
	HitMine  bool // the target was a mine
}

// Reveal uncovers (x, y). Revealed and flagged tiles are left alone. A mine
// is uncovered and reported without touching SafeRemaining. An empty tile
// floods outwards through connected empty tiles, uncovering the numbered
// tiles on the border without expanding them.
func (b *Board) Reveal(x, y int) Outcome {
	i := b.index(x, y)
	t := b.tiles[i]
	if t.Revealed() || t.Flagged() {
		return Outcome{}
	}
	switch t.Kind() {
	case KindMine:
		b.tiles[i] = t.withRevealed()
		return Outcome{HitMine: true}
	case KindNumbered:
		b.uncover(i)
		return Outcome{Revealed: 1}
	}
	return Outcome{Revealed: b.flood(x, y)}
}

// flood reveals the empty region containing (x, y). Tiles are uncovered
// when pushed, so each one enters the stack at most once.
func (b *Board) flood(x, y int) int {
	stack := make([]types.Pos, 0, len(b.tiles))
	push := func(p types.Pos) {
		if len(stack) == cap(stack) {
			assertf("flood fill worklist overflow at %s", p)
		}
		stack = append(stack, p)
	}

	b.uncover(b.index(x, y))
	revealed := 1
	push(types.Pos{X: x, Y: y})

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.Neighbours(p.X, p.Y, func(nx, ny int) {
			n := b.index(nx, ny)
			t := b.tiles[n]
			if t.Revealed() || t.Flagged() {
				return
			}
			b.uncover(n)
			revealed++
			if t.Kind() == KindEmpty {
				push(types.Pos{X: nx, Y: ny})
			}
		})
	}
	return revealed
}

func (b *Board) uncover(i int) {
	t := b.tiles[i]
	if t.IsMine() {
		assertf("mine at index %d reached by a safe reveal", i)
	}
	if b.safeRemaining == 0 {
		assertf("safe tile count underflow at index %d", i)
	}
	b.tiles[i] = t.withRevealed()
	b.safeRemaining--
}
