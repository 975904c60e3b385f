package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventCharacterTyped carries one keystroke from the input feed into the game loop
	// Trigger: Controller.PushKey from the input goroutine
	// Consumer: Controller tick (input phase) | Payload: *CharacterTypedPayload
	EventCharacterTyped EventType = iota

	// EventGameStarted signals a fresh session
	// Trigger: Start or Restart command
	// Consumer: achievement.Tracker | Payload: *GameStartedPayload
	EventGameStarted

	// EventKeyTyped reports every keystroke applied while running
	// Trigger: Controller input phase | Payload: *KeyTypedPayload
	EventKeyTyped

	// EventMonsterCompleted signals a monster whose text was fully typed
	// Trigger: Matcher.Apply returned completed
	// Consumer: achievement.Tracker | Payload: *MonsterCompletedPayload
	EventMonsterCompleted

	// EventMiss signals a keystroke that did not match the current target
	// Trigger: Controller input phase, only when a target existed | Payload: *MissPayload
	EventMiss

	// EventThemeUsed signals the theme a session is played with
	// Trigger: Start, Restart, theme change while running | Payload: *ThemeUsedPayload
	EventThemeUsed

	// EventDifficultyIncreased signals a periodic escalation
	// Trigger: escalation timer | Payload: *DifficultyIncreasedPayload
	EventDifficultyIncreased

	// EventGameEnded signals the single terminal transition of a session
	// Trigger: floor collision or End command | Payload: *GameEndedPayload
	EventGameEnded
)

var eventNames = [...]string{
	EventCharacterTyped:      "CharacterTyped",
	EventGameStarted:         "GameStarted",
	EventKeyTyped:            "KeyTyped",
	EventMonsterCompleted:    "MonsterCompleted",
	EventMiss:                "Miss",
	EventThemeUsed:           "ThemeUsed",
	EventDifficultyIncreased: "DifficultyIncreased",
	EventGameEnded:           "GameEnded",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick that produced the event
	Timestamp time.Time
}
