// Package input turns terminal events into game intents and routes them to the
// scheduler and the settings selection.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+Q, Ctrl+C
	IntentResize      // Terminal resize event
	IntentToggleDebug // F2

	// Lifecycle
	IntentStart   // Enter: start, or leave the game-over screen
	IntentPause   // Esc: toggle pause
	IntentRestart // Ctrl+R

	// Selection
	IntentThemeNext      // Tab
	IntentThemePrev      // Shift+Tab
	IntentLevelNext      // Right
	IntentLevelPrev      // Left
	IntentDifficultyNext // Up
	IntentDifficultyPrev // Down

	// Typing
	IntentTypeChar // Printable character for the input feed
)

var intentNames = [...]string{
	IntentNone:           "none",
	IntentQuit:           "quit",
	IntentResize:         "resize",
	IntentToggleDebug:    "toggle_debug",
	IntentStart:          "start",
	IntentPause:          "pause",
	IntentRestart:        "restart",
	IntentThemeNext:      "theme_next",
	IntentThemePrev:      "theme_prev",
	IntentLevelNext:      "level_next",
	IntentLevelPrev:      "level_prev",
	IntentDifficultyNext: "difficulty_next",
	IntentDifficultyPrev: "difficulty_prev",
	IntentTypeChar:       "type_char",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one parsed user action
type Intent struct {
	Type IntentType
	Char rune // IntentTypeChar only
}
