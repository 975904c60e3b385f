package engine

import (
	"sort"
	"time"
)

// TimerID identifies a registered timer; zero is never issued
type TimerID uint64

// TimerFunc runs on the game loop when a timer is due
type TimerFunc func(now time.Time)

type timer struct {
	id       TimerID
	name     string
	due      time.Time
	interval time.Duration // zero for one-shot
	fn       TimerFunc
}

// Timers is the registry of periodic and one-shot callbacks driven by game time
// Every handle is cancelled individually; Fire runs due callbacks in (due, id) order
// Owned by the game loop, not safe for concurrent use
type Timers struct {
	next  TimerID
	items map[TimerID]*timer
	due   []*timer // scratch for Fire
}

// NewTimers creates an empty registry
func NewTimers() *Timers {
	return &Timers{items: make(map[TimerID]*timer)}
}

// Every registers fn to run each interval, first at now+interval
func (t *Timers) Every(name string, interval time.Duration, now time.Time, fn TimerFunc) TimerID {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return t.add(name, now.Add(interval), interval, fn)
}

// After registers fn to run once at now+delay
func (t *Timers) After(name string, delay time.Duration, now time.Time, fn TimerFunc) TimerID {
	return t.add(name, now.Add(delay), 0, fn)
}

func (t *Timers) add(name string, due time.Time, interval time.Duration, fn TimerFunc) TimerID {
	t.next++
	id := t.next
	t.items[id] = &timer{id: id, name: name, due: due, interval: interval, fn: fn}
	return id
}

// Cancel removes a timer, reports whether it was registered
func (t *Timers) Cancel(id TimerID) bool {
	if _, ok := t.items[id]; !ok {
		return false
	}
	delete(t.items, id)
	return true
}

// CancelAll removes every timer and returns how many were registered
func (t *Timers) CancelAll() int {
	n := len(t.items)
	clear(t.items)
	return n
}

// Len returns the number of registered timers
func (t *Timers) Len() int {
	return len(t.items)
}

// Pending reports whether id is still registered
func (t *Timers) Pending(id TimerID) bool {
	_, ok := t.items[id]
	return ok
}

// Fire runs every timer due at now, at most once each, and returns how many ran
// A callback may cancel or add timers; cancelled ones are skipped, added ones wait for the next Fire
// Periodic timers that fell behind are rescheduled from now instead of catching up
func (t *Timers) Fire(now time.Time) int {
	t.due = t.due[:0]
	for _, tm := range t.items {
		if !tm.due.After(now) {
			t.due = append(t.due, tm)
		}
	}
	if len(t.due) == 0 {
		return 0
	}
	sort.Slice(t.due, func(i, j int) bool {
		if t.due[i].due.Equal(t.due[j].due) {
			return t.due[i].id < t.due[j].id
		}
		return t.due[i].due.Before(t.due[j].due)
	})

	ran := 0
	for _, tm := range t.due {
		if cur, ok := t.items[tm.id]; !ok || cur != tm {
			continue
		}
		if tm.interval > 0 {
			tm.due = tm.due.Add(tm.interval)
			if !tm.due.After(now) {
				tm.due = now.Add(tm.interval)
			}
		} else {
			delete(t.items, tm.id)
		}
		tm.fn(now)
		ran++
	}
	return ran
}
