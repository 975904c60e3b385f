package engine

import "github.com/ScaratP/TypingMonster/components"

// Bounds is the world size in world units
type Bounds struct {
	Width, Height float64
}

// Floor returns the Y at which a monster ends the game
func (b Bounds) Floor(bottomBar float64) float64 {
	return b.Height - bottomBar
}

// Frame is the read-only view handed to the render callback once per tick
type Frame struct {
	Tick int64

	Monsters []components.Monster // deep copies
	Target   int                  // index into Monsters, -1 when none

	Score                int
	ThemeID              string
	Level                int
	Difficulty           string
	DifficultyMultiplier float64

	Phase  components.Phase
	Paused bool
	Hint   string

	Bounds Bounds
	Floor  float64
}

// RenderFunc consumes frames; it must not call back into the controller
type RenderFunc func(Frame)

// TargetMonster returns the targeted monster, if any
func (f *Frame) TargetMonster() (*components.Monster, bool) {
	if f.Target < 0 || f.Target >= len(f.Monsters) {
		return nil, false
	}
	return &f.Monsters[f.Target], true
}
