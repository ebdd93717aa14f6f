package engine

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsweep/board"
	"termsweep/types"
)

func TestMain(m *testing.M) {
	Log.SetOutput(io.Discard)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	os.Exit(m.Run())
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// newWallGame builds a beginner game whose mines form a wall in column 6
// plus one in the bottom-right corner, whatever the first reveal is.
func newWallGame(t *testing.T) (*Game, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	g := NewGame(GameConfig{Preset: board.Beginner})
	g.now = clock.now
	g.place = func(b *board.Board, avoid types.Pos) {
		for y := 0; y < 9; y++ {
			require.True(t, b.PlaceMine(6, y))
		}
		require.True(t, b.PlaceMine(8, 8))
	}
	return g, clock
}

func revealAt(g *Game, x, y int) bool {
	g.MoveTo(types.Pos{X: x, Y: y})
	return g.Reveal()
}

func TestNewGame(t *testing.T) {
	g := NewGame(DefaultConfig())
	assert.Equal(t, NotStarted, g.State())
	assert.Equal(t, types.Pos{X: 4, Y: 4}, g.Cursor())
	assert.Equal(t, 71, g.Board().SafeRemaining())
	assert.Equal(t, 10, g.MinesLeft())
	assert.Equal(t, time.Duration(0), g.Elapsed())
	_, ok := g.Report()
	assert.False(t, ok)
}

func TestCursorClampsAtEdges(t *testing.T) {
	g := NewGame(DefaultConfig())
	for i := 0; i < 4; i++ {
		assert.True(t, g.Apply(EventMoveUp))
	}
	assert.False(t, g.Apply(EventMoveUp))
	assert.Equal(t, types.Pos{X: 4, Y: 0}, g.Cursor())

	for i := 0; i < 4; i++ {
		assert.True(t, g.Apply(EventMoveRight))
	}
	assert.False(t, g.Apply(EventMoveRight))
	assert.Equal(t, types.Pos{X: 8, Y: 0}, g.Cursor())

	assert.False(t, g.MoveTo(types.Pos{X: 9, Y: 0}))
	assert.False(t, g.MoveTo(types.Pos{X: -1, Y: 3}))
	assert.True(t, g.MoveTo(types.Pos{X: 0, Y: 8}))
	assert.False(t, g.Apply(EventMoveDown))
	assert.False(t, g.Apply(EventMoveLeft))
	assert.False(t, g.Apply(EventNone))
	assert.Equal(t, NotStarted, g.State())
}

func TestToggleFlagTwiceRestores(t *testing.T) {
	g, _ := newWallGame(t)
	assert.True(t, g.Apply(EventToggleFlag))
	assert.True(t, g.Board().At(4, 4).Flagged())
	assert.Equal(t, 9, g.MinesLeft())

	assert.False(t, g.Apply(EventReveal), "flagged tile must not be revealed")
	assert.Equal(t, NotStarted, g.State())

	assert.True(t, g.Apply(EventToggleFlag))
	assert.False(t, g.Board().At(4, 4).Flagged())
	assert.Equal(t, 10, g.MinesLeft())
	assert.Equal(t, time.Duration(0), g.Elapsed())
}

func TestFirstRevealStartsGame(t *testing.T) {
	g, clock := newWallGame(t)
	require.True(t, g.Apply(EventReveal))

	assert.Equal(t, InProgress, g.State())
	assert.Equal(t, 71-54, g.Board().SafeRemaining())
	assert.Equal(t, 10, g.Board().MinesPlaced())

	clock.advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, g.Elapsed())
}

func TestRevealNumberedTile(t *testing.T) {
	g, _ := newWallGame(t)
	require.True(t, revealAt(g, 4, 4))
	before := g.Board().SafeRemaining()

	require.True(t, revealAt(g, 7, 4))
	assert.Equal(t, 3, g.Board().At(7, 4).Count())
	assert.Equal(t, before-1, g.Board().SafeRemaining())
	assert.Equal(t, InProgress, g.State())

	assert.False(t, g.Apply(EventReveal), "second reveal of the same tile is a no-op")
	assert.False(t, g.Apply(EventToggleFlag), "revealed tiles cannot be flagged")
	assert.Equal(t, before-1, g.Board().SafeRemaining())
}

func TestRevealMineLoses(t *testing.T) {
	g, clock := newWallGame(t)
	require.True(t, revealAt(g, 4, 4))
	before := g.Board().SafeRemaining()
	clock.advance(2500 * time.Millisecond)

	require.True(t, revealAt(g, 6, 0))
	assert.Equal(t, Lost, g.State())
	assert.Equal(t, before, g.Board().SafeRemaining())
	pos, ok := g.Triggered()
	assert.True(t, ok)
	assert.Equal(t, types.Pos{X: 6, Y: 0}, pos)

	for _, ev := range []Event{EventMoveDown, EventToggleFlag, EventReveal} {
		assert.False(t, g.Apply(ev), ev.String())
	}
	assert.Equal(t, types.Pos{X: 6, Y: 0}, g.Cursor())

	clock.advance(time.Minute)
	r, ok := g.Report()
	require.True(t, ok)
	assert.False(t, r.Won)
	assert.Equal(t, int64(2), r.Seconds())
	assert.Equal(t, "Game Over, you clicked a mine!\nPlaytime: 2s", r.String())
}

func TestWinHappensExactlyOnce(t *testing.T) {
	g, clock := newWallGame(t)
	wins := 0
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			if x == 6 || (x == 8 && y == 8) {
				continue
			}
			prev := g.State()
			clock.advance(time.Second)
			revealAt(g, x, y)
			if g.State() == Won && prev != Won {
				wins++
				assert.Equal(t, 0, g.Board().SafeRemaining())
			}
			if g.Board().SafeRemaining() > 0 {
				assert.Equal(t, InProgress, g.State(), "tile (%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, Won, g.State())

	r, ok := g.Report()
	require.True(t, ok)
	assert.True(t, r.Won)
	assert.Equal(t, "You win!", r.Message())
}

func TestFirstRevealNeverHitsMine(t *testing.T) {
	for _, p := range board.Presets() {
		for seed := uint64(1); seed <= 60; seed++ {
			g := NewGame(GameConfig{Preset: p, Seed: seed})
			g.MoveTo(types.Pos{X: int(seed*7) % p.Width, Y: int(seed*13) % p.Height})
			require.True(t, g.Apply(EventReveal))
			assert.NotEqual(t, Lost, g.State(), "%s seed %d", p.Name, seed)
			c := g.Cursor()
			assert.Equal(t, board.KindEmpty, g.Board().At(c.X, c.Y).Kind())
		}
	}
}

func TestSameSeedSameLayout(t *testing.T) {
	a := NewGame(GameConfig{Preset: board.Intermediate, Seed: 99})
	b := NewGame(GameConfig{Preset: board.Intermediate, Seed: 99})
	a.Apply(EventReveal)
	b.Apply(EventReveal)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, a.Board().At(x, y), b.Board().At(x, y))
		}
	}
}

func TestReportTruncatesSeconds(t *testing.T) {
	r := Report{Won: true, Elapsed: 12*time.Second + 999*time.Millisecond}
	assert.Equal(t, int64(12), r.Seconds())
	assert.Equal(t, "You win!\nPlaytime: 12s", r.String())
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "in progress", InProgress.String())
	assert.Equal(t, "reveal", EventReveal.String())
	assert.True(t, Won.Terminal())
	assert.False(t, NotStarted.Terminal())
}
