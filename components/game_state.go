package components

import "time"

// Phase is the lifecycle phase of a game session
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseEnded
)

var phaseNames = [...]string{
	PhaseNotStarted: "NotStarted",
	PhaseRunning:    "Running",
	PhasePaused:     "Paused",
	PhaseEnded:      "Ended",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// ParsePhase maps a phase name back to its value
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return 0, false
}

// GameState is the mutable session state owned by the game loop
type GameState struct {
	Phase Phase

	Score                int
	DifficultyMultiplier float64

	Started bool
	Paused  bool

	LastDifficultyIncreaseAt time.Time
	LastCleanupAt            time.Time
	EndedAt                  time.Time

	// Hint is the latest player-facing message
	Hint string
}

// Reset restores initial session values
func (s *GameState) Reset(baseMultiplier float64) {
	*s = GameState{
		Phase:                s.Phase,
		DifficultyMultiplier: baseMultiplier,
	}
}
