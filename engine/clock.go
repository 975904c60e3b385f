package engine

import (
	"sync"
	"time"
)

// TimeProvider is a source of real time
type TimeProvider interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// MockTimeProvider is a manually advanced TimeProvider for tests and replays
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime sets the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the current time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// PausableClock is game time: real time minus every paused interval
// While paused Now is frozen at the pause point
type PausableClock struct {
	mu sync.RWMutex

	real TimeProvider

	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewPausableClock creates a clock over real, wall time when nil
func NewPausableClock(real TimeProvider) *PausableClock {
	if real == nil {
		real = wallClock{}
	}
	return &PausableClock{real: real}
}

// Now returns current game time
func (c *PausableClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.paused {
		return c.pausedAt.Add(-c.pausedTotal)
	}
	return c.real.Now().Add(-c.pausedTotal)
}

// RealTime returns the underlying provider time, unaffected by pause
func (c *PausableClock) RealTime() time.Time {
	return c.real.Now()
}

// Pause freezes game time, no-op when already paused
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.real.Now()
}

// Resume continues game time, no-op when running
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.pausedTotal += c.real.Now().Sub(c.pausedAt)
	c.paused = false
	c.pausedAt = time.Time{}
}

// IsPaused returns current pause state
func (c *PausableClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// PausedDuration returns cumulative pause time including a pause in progress
func (c *PausableClock) PausedDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.pausedTotal
	if c.paused {
		total += c.real.Now().Sub(c.pausedAt)
	}
	return total
}
