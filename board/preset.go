package board

import (
	"fmt"
	"strings"
)

// safeZoneCells is the size of the mine-free block around the first reveal.
const safeZoneCells = 9

// Preset is one of the fixed board sizes.
type Preset struct {
	Name      string
	Width     int
	Height    int
	MineCount int
}

var (
	Beginner     = Preset{Name: "beginner", Width: 9, Height: 9, MineCount: 10}
	Intermediate = Preset{Name: "intermediate", Width: 16, Height: 16, MineCount: 40}
	Expert       = Preset{Name: "expert", Width: 30, Height: 16, MineCount: 99}
)

// Presets returns the built-in presets from easiest to hardest.
func Presets() []Preset {
	return []Preset{Beginner, Intermediate, Expert}
}

// PresetByName looks up a built-in preset, ignoring case.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Cells returns the number of tiles on the board.
func (p Preset) Cells() int {
	return p.Width * p.Height
}

// Density returns the share of tiles that hold a mine.
func (p Preset) Density() float64 {
	return float64(p.MineCount) / float64(p.Cells())
}

// Validate checks that mines can always be placed around the first reveal.
func (p Preset) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("preset %q: invalid size %dx%d", p.Name, p.Width, p.Height)
	}
	if p.MineCount < 1 {
		return fmt.Errorf("preset %q: needs at least one mine", p.Name)
	}
	if p.MineCount+safeZoneCells > p.Cells() {
		return fmt.Errorf("preset %q: %d mines do not fit a %dx%d board with a safe zone",
			p.Name, p.MineCount, p.Width, p.Height)
	}
	return nil
}

func (p Preset) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", p.Name, p.Width, p.Height, p.MineCount)
}
