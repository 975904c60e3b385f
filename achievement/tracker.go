package achievement

import (
	"log"
	"sync"
	"time"

	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/events"
)

// UnlockFunc is called once per achievement, on the goroutine that delivered the triggering event
// It may call back into the tracker
type UnlockFunc func(a Achievement, at time.Time)

// Tracker consumes game events, maintains Stats and unlocks achievements once per process
type Tracker struct {
	mu sync.Mutex

	stats        Stats
	achievements []Achievement
	unlocked     map[string]time.Time
	order        []string
	running      bool
	lastRefresh  time.Time

	onUnlock UnlockFunc
}

// NewTracker creates a tracker over the default achievement catalog
func NewTracker(onUnlock UnlockFunc) *Tracker {
	return &Tracker{
		stats:        newStats(),
		achievements: Catalog(),
		unlocked:     make(map[string]time.Time),
		onUnlock:     onUnlock,
	}
}

// EventTypes implements events.Handler
func (t *Tracker) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGameStarted,
		events.EventKeyTyped,
		events.EventMonsterCompleted,
		events.EventMiss,
		events.EventThemeUsed,
		events.EventGameEnded,
	}
}

// HandleEvent implements events.Handler; now is game clock time
func (t *Tracker) HandleEvent(now time.Time, ev events.GameEvent) {
	t.mu.Lock()
	t.apply(now, ev)
	fresh := t.check(now)
	t.mu.Unlock()

	t.notify(fresh, now)
}

// apply folds one event into the stats, caller holds mu
func (t *Tracker) apply(now time.Time, ev events.GameEvent) {
	s := &t.stats
	switch ev.Type {
	case events.EventGameStarted:
		s.resetSession(now)
		t.running = true
		t.lastRefresh = now
		if p, ok := ev.Payload.(*events.GameStartedPayload); ok {
			if p.Level > s.MaxLevel {
				s.MaxLevel = p.Level
			}
			s.UsedThemes[p.ThemeID] = struct{}{}
		}

	case events.EventKeyTyped:
		s.TotalCharsTyped++
		if now.Sub(s.lastSpeedUpdate) >= constants.TypingSpeedUpdateInterval {
			s.updateTypingSpeed(now)
		}

	case events.EventMonsterCompleted:
		s.TotalDefeated++
		s.CurrentCombo++
		s.NoMissStreak++
		if p, ok := ev.Payload.(*events.MonsterCompletedPayload); ok {
			s.Score = p.Score
		}

	case events.EventMiss:
		s.CurrentCombo = 0
		s.NoMissStreak = 0

	case events.EventThemeUsed:
		if p, ok := ev.Payload.(*events.ThemeUsedPayload); ok {
			s.UsedThemes[p.ThemeID] = struct{}{}
		}

	case events.EventGameEnded:
		if p, ok := ev.Payload.(*events.GameEndedPayload); ok {
			s.Score = p.Score
		}
		s.updateTypingSpeed(now)
		s.refresh(now)
		t.running = false
		return
	}

	if t.running {
		s.refresh(now)
	}
}

// Refresh advances play time outside of events, throttled to PlayTimeUpdateInterval
// Called from the render path with game clock time
func (t *Tracker) Refresh(now time.Time) {
	t.mu.Lock()
	if !t.running || now.Sub(t.lastRefresh) < constants.PlayTimeUpdateInterval {
		t.mu.Unlock()
		return
	}
	t.lastRefresh = now
	if now.Sub(t.stats.lastSpeedUpdate) >= constants.TypingSpeedUpdateInterval {
		t.stats.updateTypingSpeed(now)
	}
	t.stats.refresh(now)
	fresh := t.check(now)
	t.mu.Unlock()

	t.notify(fresh, now)
}

// check marks every newly satisfied achievement unlocked and returns them, caller holds mu
func (t *Tracker) check(now time.Time) []Achievement {
	var fresh []Achievement
	for _, a := range t.achievements {
		if _, done := t.unlocked[a.ID]; done {
			continue
		}
		if !a.Condition(&t.stats) {
			continue
		}
		t.unlocked[a.ID] = now
		t.order = append(t.order, a.ID)
		fresh = append(fresh, a)
		log.Printf("[ACHIEVEMENT] unlocked %s", a.ID)
	}
	return fresh
}

func (t *Tracker) notify(fresh []Achievement, now time.Time) {
	if t.onUnlock == nil {
		return
	}
	for _, a := range fresh {
		t.onUnlock(a, now)
	}
}

// Stats returns a copy of the current statistics
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats.clone()
}

// Unlocked returns unlocked achievement ids in unlock order
func (t *Tracker) Unlocked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.order...)
}

// UnlockedCount returns the number of unlocked achievements
func (t *Tracker) UnlockedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.order)
}

// TotalCount returns the number of defined achievements
func (t *Tracker) TotalCount() int {
	return len(t.achievements)
}

// IsUnlocked reports whether id has been unlocked
func (t *Tracker) IsUnlocked(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.unlocked[id]
	return ok
}
