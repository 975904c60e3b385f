package constants

import "time"

// UI Layout Constants
const (
	// StatusBarRows is the number of terminal rows reserved above the play area
	StatusBarRows = 1

	// BottomBarRows is the number of terminal rows reserved for the hint bar
	BottomBarRows = 1

	// TargetMarker is drawn above the current target
	TargetMarker = '▼'

	// WorldUnitsPerColumn and WorldUnitsPerRow scale the world to terminal cells
	// BottomBarHeight spans two rows: the floor line and the hint bar
	WorldUnitsPerColumn = 10.0
	WorldUnitsPerRow    = 25.0

	// DifficultyGaugeCeiling is the multiplier drawn as a full gauge
	DifficultyGaugeCeiling = 3.0

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// UI Timing Constants
const (
	// AchievementToastTimeout is how long an unlocked achievement stays on screen
	AchievementToastTimeout = 3 * time.Second

	// GameOverSettleDelay is how long the game-over screen ignores Enter
	GameOverSettleDelay = 1 * time.Second
)
