package events

import (
	"sync/atomic"

	"github.com/ScaratP/TypingMonster/constants"
)

// queueEntry is an immutable published event tagged with its write position
type queueEntry struct {
	pos   uint64
	event GameEvent
}

// EventQueue is a lock-free ring buffer with many producers and one consumer
// The controller owns two: keystrokes pushed from the input goroutine, stats events pushed by the tick
// When full, Push overwrites the oldest unread event and counts it as dropped
// Each slot swaps whole entries atomically, so an overwrite never tears a read in progress
type EventQueue struct {
	slots   [constants.EventQueueSize]atomic.Pointer[queueEntry]
	read    atomic.Uint64
	write   atomic.Uint64
	dropped atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends event; safe from any goroutine
func (eq *EventQueue) Push(event GameEvent) {
	// Claim a write position
	pos := eq.write.Add(1) - 1
	eq.slots[pos&constants.EventBufferMask].Store(&queueEntry{pos: pos, event: event})

	// Drag the read position forward past overwritten events
	for {
		read := eq.read.Load()
		if read+constants.EventQueueSize >= pos+1 {
			return
		}
		if eq.read.CompareAndSwap(read, pos+1-constants.EventQueueSize) {
			eq.dropped.Add(pos + 1 - constants.EventQueueSize - read)
			return
		}
	}
}

// Consume returns the unread events oldest first; only the scheduler goroutine may call it
// Stops early at a slot whose writer has not finished, leaving it for the next call
// A slot already holding a newer entry means the reader was overtaken; the read position is reloaded
func (eq *EventQueue) Consume() []GameEvent {
	for {
		read := eq.read.Load()
		write := eq.write.Load()
		if write == read {
			return nil
		}

		n := write - read
		if n > constants.EventQueueSize {
			read = write - constants.EventQueueSize
			n = constants.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for pos := read; pos < read+n; pos++ {
			e := eq.slots[pos&constants.EventBufferMask].Load()
			if e == nil || e.pos != pos {
				break
			}
			out = append(out, e.event)
		}

		if eq.read.CompareAndSwap(read, read+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the number of unread events, at most the capacity
func (eq *EventQueue) Len() int {
	read := eq.read.Load()
	return int(min(eq.write.Load()-read, constants.EventQueueSize))
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
