package board

// Source supplies the raw integers used to pick mine positions.
type Source interface {
	Next() uint64
}

// PlaceMines scatters the preset's mines, keeping the 3x3 block centred on
// (avoidX, avoidY) clear. It must run exactly once, before the first reveal.
func (b *Board) PlaceMines(src Source, avoidX, avoidY int) {
	if b.minesPlaced != 0 {
		assertf("mines already placed (%d)", b.minesPlaced)
	}
	w, h := uint64(b.preset.Width), uint64(b.preset.Height)
	for b.minesPlaced < b.preset.MineCount {
		x := int(src.Next() % w)
		y := int(src.Next() % h)
		if inSafeZone(x, y, avoidX, avoidY) {
			continue
		}
		b.PlaceMine(x, y)
	}
}

// PlaceMine turns (x, y) into a mine and bumps the count of every
// non-mine neighbour. It returns false if the tile already is a mine.
func (b *Board) PlaceMine(x, y int) bool {
	i := b.index(x, y)
	if b.tiles[i].IsMine() {
		return false
	}
	if b.minesPlaced == b.preset.MineCount {
		assertf("board already holds %d mines", b.minesPlaced)
	}
	b.tiles[i] = b.tiles[i].withMine()
	b.minesPlaced++
	b.Neighbours(x, y, func(nx, ny int) {
		n := b.index(nx, ny)
		b.tiles[n] = b.tiles[n].withAdjacentMine()
	})
	return true
}

func inSafeZone(x, y, cx, cy int) bool {
	return abs(x-cx) <= 1 && abs(y-cy) <= 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
