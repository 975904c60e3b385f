package theme

import (
	"errors"
	"testing"
)

// TestSettingsDefaults verifies the preferred initial selection
func TestSettingsDefaults(t *testing.T) {
	s := NewSettings(Default())

	if s.ThemeID() != "default" || s.LevelID() != 1 || s.DifficultyID() != "normal" {
		t.Fatalf("Unexpected defaults: %s %d %s", s.ThemeID(), s.LevelID(), s.DifficultyID())
	}
	lvl := s.Level()
	if lvl.Count != 8 || lvl.Speed != 0.5 || lvl.ScoreFactor != 1.0 {
		t.Errorf("Unexpected level config: %+v", lvl)
	}
	if s.ScoreFactor() != 1.0 || s.DifficultyIncreaseFactor() != 0.15 {
		t.Errorf("Unexpected factors: %v %v", s.ScoreFactor(), s.DifficultyIncreaseFactor())
	}
}

// TestSettingsRejectKeepsPrior verifies configuration errors keep the previous valid selection
func TestSettingsRejectKeepsPrior(t *testing.T) {
	s := NewSettings(Default())

	if err := s.SetTheme("english"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := s.SetTheme("missing"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Expected ErrUnknownTheme, got %v", err)
	}
	if s.ThemeID() != "english" {
		t.Errorf("Expected english kept, got %s", s.ThemeID())
	}

	if err := s.SetLevel(3); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if err := s.SetLevel(0); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
	if s.LevelID() != 3 {
		t.Errorf("Expected level 3 kept, got %d", s.LevelID())
	}

	if err := s.SetDifficulty("impossible"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Expected ErrUnknownDifficulty, got %v", err)
	}
	if s.DifficultyID() != "normal" {
		t.Errorf("Expected normal kept, got %s", s.DifficultyID())
	}
}

// TestSettingsCycle verifies cycling wraps in both directions
func TestSettingsCycle(t *testing.T) {
	s := NewSettings(Default())

	if got := s.CycleTheme(1); got != "numbers" {
		t.Errorf("Expected numbers, got %s", got)
	}
	if got := s.CycleTheme(-2); got != "compound" {
		t.Errorf("Expected wrap to compound, got %s", got)
	}
	if got := s.CycleLevel(-1); got != 3 {
		t.Errorf("Expected wrap to level 3, got %d", got)
	}
	if got := s.CycleDifficulty(1); got != "hard" {
		t.Errorf("Expected hard, got %s", got)
	}
	if got := s.CycleDifficulty(1); got != "easy" {
		t.Errorf("Expected wrap to easy, got %s", got)
	}
}
