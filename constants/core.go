package constants

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the game logic update interval, one tick per animation frame (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// PausedTickInterval is the scheduler sleep while paused, frames still refresh
	PausedTickInterval = 2 * TickInterval
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// CommandQueueSize is the buffered capacity of the scheduler command channel
	CommandQueueSize = 64
)

// World Geometry (world units, independent of terminal size)
const (
	// DefaultWorldWidth is the play area width before any resize
	DefaultWorldWidth = 800.0

	// DefaultWorldHeight is the play area height before any resize
	DefaultWorldHeight = 600.0

	// BottomBarHeight is the strip above the bottom edge that counts as the floor
	BottomBarHeight = 50.0
)
