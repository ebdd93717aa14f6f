package engine

import (
	"fmt"
	"time"
)

const (
	winMessage  = "You win!"
	lossMessage = "Game Over, you clicked a mine!"
)

// Report summarises a finished game.
type Report struct {
	Won     bool
	Elapsed time.Duration
}

// Message is the one-line verdict shown to the player.
func (r Report) Message() string {
	if r.Won {
		return winMessage
	}
	return lossMessage
}

// Seconds is the play time truncated to whole seconds.
func (r Report) Seconds() int64 {
	return int64(r.Elapsed / time.Second)
}

func (r Report) String() string {
	return fmt.Sprintf("%s\nPlaytime: %ds", r.Message(), r.Seconds())
}
