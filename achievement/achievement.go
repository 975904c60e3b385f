// Package achievement is the stats collaborator of the game loop: it listens
// to outbound game events, keeps typing statistics and unlocks achievements.
package achievement

// Achievement is a one-time unlock with its condition over the session stats
type Achievement struct {
	ID          string
	Title       string
	Description string
	Condition   func(s *Stats) bool
}

// ThemeCount is the number of distinct themes needed for all_themes
const ThemeCount = 5

// Catalog returns the achievement definitions in display order
func Catalog() []Achievement {
	return []Achievement{
		{"first_monster", "First Blood", "Defeat your first monster", func(s *Stats) bool { return s.TotalDefeated >= 1 }},
		{"speed_10", "Novice Typist", "Reach 10 characters per minute", func(s *Stats) bool { return s.TypingSpeed >= 10 }},
		{"speed_30", "Intermediate Typist", "Reach 30 characters per minute", func(s *Stats) bool { return s.TypingSpeed >= 30 }},
		{"speed_50", "Advanced Typist", "Reach 50 characters per minute", func(s *Stats) bool { return s.TypingSpeed >= 50 }},
		{"speed_100", "Professional Typist", "Reach 100 characters per minute", func(s *Stats) bool { return s.TypingSpeed >= 100 }},
		{"defeated_10", "Exterminator I", "Defeat 10 monsters", func(s *Stats) bool { return s.TotalDefeated >= 10 }},
		{"defeated_50", "Exterminator II", "Defeat 50 monsters", func(s *Stats) bool { return s.TotalDefeated >= 50 }},
		{"defeated_100", "Exterminator III", "Defeat 100 monsters", func(s *Stats) bool { return s.TotalDefeated >= 100 }},
		{"no_miss_10", "Flawless I", "Defeat 10 monsters in a row without a miss", func(s *Stats) bool { return s.NoMissStreak >= 10 }},
		{"no_miss_20", "Flawless II", "Defeat 20 monsters in a row without a miss", func(s *Stats) bool { return s.NoMissStreak >= 20 }},
		{"score_100", "Triple Digits", "Score 100 points", func(s *Stats) bool { return s.Score >= 100 }},
		{"score_500", "High Scorer", "Score 500 points", func(s *Stats) bool { return s.Score >= 500 }},
		{"score_1000", "Score King", "Score 1000 points", func(s *Stats) bool { return s.Score >= 1000 }},
		{"time_1min", "Hold On I", "Play for 1 minute", func(s *Stats) bool { return s.PlayTime >= 60 }},
		{"time_3min", "Hold On II", "Play for 3 minutes", func(s *Stats) bool { return s.PlayTime >= 180 }},
		{"time_5min", "Hold On III", "Play for 5 minutes", func(s *Stats) bool { return s.PlayTime >= 300 }},
		{"level_3", "Rising Challenge", "Play level 3", func(s *Stats) bool { return s.MaxLevel >= 3 }},
		{"level_5", "Master Challenge", "Play level 5", func(s *Stats) bool { return s.MaxLevel >= 5 }},
		{"all_themes", "Collector", "Play every text theme", func(s *Stats) bool { return len(s.UsedThemes) >= ThemeCount }},
		{"combo_5", "Combo I", "Reach a 5 combo", func(s *Stats) bool { return s.MaxCombo >= 5 }},
		{"combo_10", "Combo II", "Reach a 10 combo", func(s *Stats) bool { return s.MaxCombo >= 10 }},
	}
}
