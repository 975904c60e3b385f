package achievement

import (
	"math"
	"time"
)

// Stats is the per-session statistics record
// Totals that feed achievements persist across sessions of one process, streaks reset
type Stats struct {
	Score         int
	TotalDefeated int

	TotalCharsTyped int
	TypingSpeed     int // characters per minute

	CurrentCombo    int
	MaxCombo        int
	NoMissStreak    int
	MaxNoMissStreak int

	PlayTime  int // seconds
	StartTime time.Time
	MaxLevel  int

	UsedThemes map[string]struct{}

	lastSpeedUpdate time.Time
}

func newStats() Stats {
	return Stats{MaxLevel: 1, UsedThemes: make(map[string]struct{})}
}

// resetSession starts a new session keeping process-wide totals
func (s *Stats) resetSession(now time.Time) {
	s.Score = 0
	s.CurrentCombo = 0
	s.NoMissStreak = 0
	s.TotalCharsTyped = 0
	s.TypingSpeed = 0
	s.PlayTime = 0
	s.StartTime = now
	s.lastSpeedUpdate = now
}

// updateTypingSpeed recomputes characters per minute since session start
func (s *Stats) updateTypingSpeed(now time.Time) {
	minutes := now.Sub(s.StartTime).Minutes()
	if minutes > 0 {
		s.TypingSpeed = int(math.Round(float64(s.TotalCharsTyped) / minutes))
	}
	s.lastSpeedUpdate = now
}

// refresh derives play time and the running maxima
func (s *Stats) refresh(now time.Time) {
	if !s.StartTime.IsZero() {
		s.PlayTime = int(now.Sub(s.StartTime) / time.Second)
	}
	if s.CurrentCombo > s.MaxCombo {
		s.MaxCombo = s.CurrentCombo
	}
	if s.NoMissStreak > s.MaxNoMissStreak {
		s.MaxNoMissStreak = s.NoMissStreak
	}
}

// clone returns a copy with its own theme set
func (s *Stats) clone() Stats {
	c := *s
	c.UsedThemes = make(map[string]struct{}, len(s.UsedThemes))
	for k := range s.UsedThemes {
		c.UsedThemes[k] = struct{}{}
	}
	return c
}
