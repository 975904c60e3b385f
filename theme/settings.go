package theme

import (
	"sync"
)

// Preferred selections when the catalog has them
const (
	DefaultThemeID      = "default"
	DefaultLevelID      = 1
	DefaultDifficultyID = "normal"
)

// Settings is the current theme, level and difficulty selection over a catalog
// Rejected changes keep the previous valid selection
// Reads are queried fresh by the game loop on every tick, so changes apply on the next tick
type Settings struct {
	mu      sync.RWMutex
	catalog *Catalog

	themeID      string
	levelID      int
	difficultyID string
}

// NewSettings selects the preferred defaults, or the first catalog entry when absent
func NewSettings(catalog *Catalog) *Settings {
	s := &Settings{catalog: catalog}

	if _, err := catalog.Theme(DefaultThemeID); err == nil {
		s.themeID = DefaultThemeID
	} else {
		s.themeID = catalog.themeOrder[0]
	}
	if _, err := catalog.Level(DefaultLevelID); err == nil {
		s.levelID = DefaultLevelID
	} else {
		s.levelID = catalog.levelOrder[0]
	}
	if _, err := catalog.Difficulty(DefaultDifficultyID); err == nil {
		s.difficultyID = DefaultDifficultyID
	} else {
		s.difficultyID = catalog.difficultyOrder[0]
	}

	return s
}

// Catalog returns the underlying catalog
func (s *Settings) Catalog() *Catalog {
	return s.catalog
}

// SetTheme selects a theme by id
func (s *Settings) SetTheme(id string) error {
	if _, err := s.catalog.Theme(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.themeID = id
	s.mu.Unlock()
	return nil
}

// SetLevel selects a level by number
func (s *Settings) SetLevel(id int) error {
	if _, err := s.catalog.Level(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.levelID = id
	s.mu.Unlock()
	return nil
}

// SetDifficulty selects a difficulty preset by id
func (s *Settings) SetDifficulty(id string) error {
	if _, err := s.catalog.Difficulty(id); err != nil {
		return err
	}
	s.mu.Lock()
	s.difficultyID = id
	s.mu.Unlock()
	return nil
}

// CycleTheme moves the theme selection by step in display order and returns the new id
func (s *Settings) CycleTheme(step int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themeID = cycle(s.catalog.themeOrder, s.themeID, step)
	return s.themeID
}

// CycleLevel moves the level selection by step and returns the new level
func (s *Settings) CycleLevel(step int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levelID = cycle(s.catalog.levelOrder, s.levelID, step)
	return s.levelID
}

// CycleDifficulty moves the difficulty selection by step and returns the new id
func (s *Settings) CycleDifficulty(step int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.difficultyID = cycle(s.catalog.difficultyOrder, s.difficultyID, step)
	return s.difficultyID
}

// ThemeID returns the selected theme id
func (s *Settings) ThemeID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeID
}

// LevelID returns the selected level number
func (s *Settings) LevelID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.levelID
}

// DifficultyID returns the selected difficulty id
func (s *Settings) DifficultyID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.difficultyID
}

// Theme returns the selected theme definition
func (s *Settings) Theme() Theme {
	t, _ := s.catalog.Theme(s.ThemeID())
	return t
}

// Level returns the effective level configuration under the selected difficulty
func (s *Settings) Level() LevelConfig {
	s.mu.RLock()
	level, difficulty := s.levelID, s.difficultyID
	s.mu.RUnlock()

	cfg, _ := s.catalog.Config(level, difficulty)
	return cfg
}

// ScoreFactor returns the score factor of the selected difficulty
func (s *Settings) ScoreFactor() float64 {
	d, _ := s.catalog.Difficulty(s.DifficultyID())
	return d.ScoreFactor
}

// DifficultyIncreaseFactor returns the escalation factor of the selected difficulty
func (s *Settings) DifficultyIncreaseFactor() float64 {
	d, _ := s.catalog.Difficulty(s.DifficultyID())
	return d.DifficultyIncrease
}

func cycle[T comparable](order []T, current T, step int) T {
	if len(order) == 0 {
		return current
	}
	idx := 0
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	n := len(order)
	idx = ((idx+step)%n + n) % n
	return order[idx]
}
