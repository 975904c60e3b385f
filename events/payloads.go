package events

import (
	"sync"
	"time"
)

// CharacterTypedPayload is one raw keystroke
type CharacterTypedPayload struct {
	Char rune
}

// CharacterTypedPayloadPool reduces GC pressure during high-frequency typing
var CharacterTypedPayloadPool = sync.Pool{
	New: func() any { return &CharacterTypedPayload{} },
}

// GameStartedPayload describes the selection a session started with
type GameStartedPayload struct {
	ThemeID    string
	Level      int
	Difficulty string
}

// KeyTypedPayload reports a keystroke and whether it advanced the target
type KeyTypedPayload struct {
	Char rune
	Hit  bool
}

// MonsterCompletedPayload describes a destroyed monster and the points it gave
type MonsterCompletedPayload struct {
	Slot   int
	Text   string
	Points int
	Score  int
}

// MissPayload describes a keystroke rejected by the current target
type MissPayload struct {
	Char     rune
	Expected string
}

// ThemeUsedPayload names the theme in play
type ThemeUsedPayload struct {
	ThemeID string
}

// DifficultyIncreasedPayload carries the multiplier after escalation
type DifficultyIncreasedPayload struct {
	Multiplier float64
	Factor     float64
}

// GameEndedPayload carries the final result of a session
type GameEndedPayload struct {
	Score    int
	Duration time.Duration
}
