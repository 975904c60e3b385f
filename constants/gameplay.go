package constants

import "time"

// Population Arena
const (
	// MaxPopulation is the hard cap on monster slots, arena capacity
	MaxPopulation = 30

	// MinActiveMonsters is the active floor restored by every recycle check
	MinActiveMonsters = 5

	// RecycleProbability is the per-check chance an inactive slot respawns once the floor is met
	RecycleProbability = 0.3

	// RecycleDelay is how long a destroyed monster stays gone before its slot respawns
	RecycleDelay = 1 * time.Second
)

// Spawn Placement
const (
	// SpawnStartY is the vertical origin of the initial stagger
	SpawnStartY = -20.0

	// SpawnStaggerY is the vertical distance between consecutive initial spawns
	SpawnStaggerY = 60.0

	// RecycleBaseY and RecycleJitterY place a recycled monster at -(base + rand*jitter)
	RecycleBaseY   = 10.0
	RecycleJitterY = 50.0

	// FreshSpawnBaseY and FreshSpawnJitterY place a top-up monster at -(base + rand*jitter)
	FreshSpawnBaseY   = 50.0
	FreshSpawnJitterY = 100.0

	// FreshSpawnMarginX is the horizontal inset for top-up spawns
	FreshSpawnMarginX = 50.0
)

// Difficulty Progression
const (
	// DifficultyIncreaseInterval is the cadence of difficulty escalation
	DifficultyIncreaseInterval = 30 * time.Second

	// CleanupInterval is the cadence of the population recycle check
	CleanupInterval = 5 * time.Second

	// DifficultySpeedScale is the fraction of the increase factor applied to fall speed
	DifficultySpeedScale = 0.2

	// GrowthThreshold is the multiplier at which the population target starts to grow
	GrowthThreshold = 2.0

	// GrowthPerStep is the number of extra slots per whole difficulty step past 1.0
	GrowthPerStep = 2

	// BaseDifficultyMultiplier is the multiplier at session start
	BaseDifficultyMultiplier = 1.0
)

// Typing Statistics
const (
	// TypingSpeedUpdateInterval is how often characters-per-minute is recomputed
	TypingSpeedUpdateInterval = 2 * time.Second

	// PlayTimeUpdateInterval is how often play time is refreshed for achievements
	PlayTimeUpdateInterval = 1 * time.Second
)
