// Package engine runs a single Minesweeper game: it turns input events into
// board changes and tracks the game state and the play timer.
package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"termsweep/board"
	"termsweep/types"
	"termsweep/xorshift"
)

// Log receives game lifecycle messages. The terminal belongs to the UI, so
// callers normally point it at a file.
var Log = logrus.New()

// State is the phase of a game.
type State int

const (
	NotStarted State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Event is one player action.
type Event int

const (
	EventNone Event = iota
	EventMoveUp
	EventMoveDown
	EventMoveLeft
	EventMoveRight
	EventToggleFlag
	EventReveal
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoveUp:
		return "move up"
	case EventMoveDown:
		return "move down"
	case EventMoveLeft:
		return "move left"
	case EventMoveRight:
		return "move right"
	case EventToggleFlag:
		return "toggle flag"
	case EventReveal:
		return "reveal"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Preset board.Preset
	Seed   uint64 // 0 seeds mine placement from the clock
}

// DefaultConfig returns a beginner game seeded from the clock.
func DefaultConfig() GameConfig {
	return GameConfig{Preset: board.Beginner}
}

// Game is the state machine for one session. It is driven from a single
// goroutine and is not safe for concurrent use.
type Game struct {
	cfg       GameConfig
	board     *board.Board
	state     State
	cursor    types.Pos
	triggered types.Pos
	start     time.Time
	end       time.Time

	place func(b *board.Board, avoid types.Pos)
	now   func() time.Time
}

// NewGame creates a game with an empty board and the cursor in the middle.
func NewGame(cfg GameConfig) *Game {
	g := &Game{
		cfg:    cfg,
		board:  board.New(cfg.Preset),
		cursor: types.Pos{X: cfg.Preset.Width / 2, Y: cfg.Preset.Height / 2},
		now:    time.Now,
	}
	g.place = g.placeRandom
	return g
}

func (g *Game) placeRandom(b *board.Board, avoid types.Pos) {
	var src *xorshift.Rand
	if g.cfg.Seed != 0 {
		src = xorshift.New(g.cfg.Seed)
	} else {
		src = xorshift.NewFromClock()
	}
	b.PlaceMines(src, avoid.X, avoid.Y)
}

func (g *Game) Board() *board.Board { return g.board }
func (g *Game) Preset() board.Preset { return g.cfg.Preset }
func (g *Game) State() State { return g.state }
func (g *Game) Cursor() types.Pos { return g.cursor }

// Triggered returns the mine that ended a lost game.
func (g *Game) Triggered() (types.Pos, bool) {
	return g.triggered, g.state == Lost
}

// MinesLeft is the mine count minus the flags placed; it goes negative when
// the player over-flags.
func (g *Game) MinesLeft() int {
	return g.board.MineCount() - g.board.Flags()
}

// Elapsed returns the play time so far, frozen once the game is over.
func (g *Game) Elapsed() time.Duration {
	switch {
	case g.state == NotStarted:
		return 0
	case g.state.Terminal():
		return g.end.Sub(g.start)
	}
	return g.now().Sub(g.start)
}

// Apply processes one event and reports whether anything changed.
// Events are ignored once the game is over.
func (g *Game) Apply(ev Event) bool {
	if g.state.Terminal() {
		return false
	}
	switch ev {
	case EventMoveUp:
		return g.Move(types.Up)
	case EventMoveDown:
		return g.Move(types.Down)
	case EventMoveLeft:
		return g.Move(types.Left)
	case EventMoveRight:
		return g.Move(types.Right)
	case EventToggleFlag:
		return g.ToggleFlag()
	case EventReveal:
		return g.Reveal()
	}
	return false
}

// Move shifts the cursor one cell. Moving off the board is a no-op.
func (g *Game) Move(d types.Direction) bool {
	return g.MoveTo(g.cursor.Add(d))
}

// MoveTo puts the cursor on p if p is on the board.
func (g *Game) MoveTo(p types.Pos) bool {
	if g.state.Terminal() || !g.board.InBounds(p.X, p.Y) || p == g.cursor {
		return false
	}
	g.cursor = p
	return true
}

// ToggleFlag flags or unflags the covered tile under the cursor.
func (g *Game) ToggleFlag() bool {
	if g.state.Terminal() {
		return false
	}
	return g.board.ToggleFlag(g.cursor.X, g.cursor.Y)
}

// Reveal uncovers the tile under the cursor. The first reveal places the
// mines around it and starts the timer.
func (g *Game) Reveal() bool {
	if g.state.Terminal() {
		return false
	}
	c := g.cursor
	t := g.board.At(c.X, c.Y)
	if t.Revealed() || t.Flagged() {
		return false
	}

	if g.state == NotStarted {
		g.place(g.board, c)
		g.start = g.now()
		g.state = InProgress
		Log.WithFields(logrus.Fields{
			"preset": g.cfg.Preset.Name,
			"seed":   g.cfg.Seed,
			"first":  c.String(),
		}).Info("game started")
	}

	out := g.board.Reveal(c.X, c.Y)
	Log.WithFields(logrus.Fields{
		"pos":       c.String(),
		"revealed":  out.Revealed,
		"hitMine":   out.HitMine,
		"remaining": g.board.SafeRemaining(),
	}).Debug("reveal")

	switch {
	case out.HitMine:
		g.triggered = c
		g.finish(Lost)
	case g.board.SafeRemaining() == 0:
		g.finish(Won)
	}
	return true
}

func (g *Game) finish(s State) {
	g.state = s
	g.end = g.now()
	Log.WithFields(logrus.Fields{
		"state":   s.String(),
		"elapsed": g.Elapsed().String(),
	}).Info("game over")
}

// Report returns the end-of-session summary once the game is over.
func (g *Game) Report() (Report, bool) {
	if !g.state.Terminal() {
		return Report{}, false
	}
	return Report{Won: g.state == Won, Elapsed: g.Elapsed()}, true
}
