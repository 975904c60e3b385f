// Package theme holds the read-only game catalog: character pools with their
// matching capabilities, per-level spawn parameters and difficulty presets.
package theme

import (
	"errors"
	"math/rand"
)

var (
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrUnknownLevel      = errors.New("unknown level")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrInvalidCatalog    = errors.New("invalid catalog")
)

// Theme is an immutable character pool plus the rules used to match keystrokes against it
type Theme struct {
	ID   string
	Name string
	Pool []string

	// Aliases maps a typed rune to the canonical token it stands for (keyboard layouts)
	Aliases map[rune]string

	// CaseInsensitive allows case-folded equality
	CaseInsensitive bool

	// FirstCharOnlyMatch lets the first rune of a multi-rune token stand for the whole token
	FirstCharOnlyMatch bool
}

// Alias returns the canonical token for r when the theme defines one
func (t Theme) Alias(r rune) (string, bool) {
	if t.Aliases == nil {
		return "", false
	}
	s, ok := t.Aliases[r]
	return s, ok
}

// Text returns the pool entry at i, cycling through the pool
func (t Theme) Text(i int) string {
	if len(t.Pool) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return t.Pool[i%len(t.Pool)]
}

// RandomText draws a uniformly random pool entry
func (t Theme) RandomText(rng *rand.Rand) string {
	if len(t.Pool) == 0 {
		return ""
	}
	return t.Pool[rng.Intn(len(t.Pool))]
}

// LevelSpec is the per-level spawn configuration from the catalog
type LevelSpec struct {
	ID    int
	Name  string
	Speed float64
	Count int
	Size  float64
}

// DifficultyPreset scales speed and scoring for a whole session
type DifficultyPreset struct {
	ID                 string
	Name               string
	SpeedMultiplier    float64
	ScoreFactor        float64
	DifficultyIncrease float64
}

// LevelConfig is the effective spawn configuration for a level under a difficulty preset
type LevelConfig struct {
	Speed                    float64
	Count                    int
	Size                     float64
	ScoreFactor              float64
	DifficultyIncreaseFactor float64
}

// Compose combines a level with a difficulty preset
func Compose(level LevelSpec, preset DifficultyPreset) LevelConfig {
	return LevelConfig{
		Speed:                    level.Speed * preset.SpeedMultiplier,
		Count:                    level.Count,
		Size:                     level.Size,
		ScoreFactor:              preset.ScoreFactor,
		DifficultyIncreaseFactor: preset.DifficultyIncrease,
	}
}
