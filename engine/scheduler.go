package engine

import (
	"errors"
	"log"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/constants"
)

// ErrSchedulerStopped is returned by Call once the scheduler has stopped or crashed
var ErrSchedulerStopped = errors.New("scheduler stopped")

// Scheduler owns the controller's goroutine: queued commands, then one tick per interval
// Commands and ticks never overlap, so the controller needs no locks
type Scheduler struct {
	ctrl *Controller

	tickInterval time.Duration
	commands     chan func(*Controller)

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	loopDone chan struct{} // closed when the loop exits, including after a panic
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// OnPanic is called with the recovered value if the loop crashes; the loop stops
	OnPanic func(v any, stack []byte)
}

// NewScheduler creates a scheduler ticking ctrl every interval (TickInterval when zero)
func NewScheduler(ctrl *Controller, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = constants.TickInterval
	}
	return &Scheduler{
		ctrl:         ctrl,
		tickInterval: interval,
		commands:     make(chan func(*Controller), constants.CommandQueueSize),
		stopChan:     make(chan struct{}),
		loopDone:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		go s.loop()
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.running.Load() {
			s.wg.Wait()
		}
	})
}

// Ticks returns the number of ticks executed
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

// Submit queues fn to run on the controller goroutine before the next tick
// Returns false when the queue is full or the loop is no longer running
func (s *Scheduler) Submit(fn func(*Controller)) bool {
	select {
	case <-s.stopChan:
		return false
	case <-s.loopDone:
		return false
	default:
	}
	select {
	case s.commands <- fn:
		return true
	default:
		return false
	}
}

// Call runs fn on the controller goroutine and waits for its result
// Must not be called from the render callback
func (s *Scheduler) Call(fn func(*Controller) error) error {
	done := make(chan error, 1)
	if !s.Submit(func(c *Controller) { done <- fn(c) }) {
		return ErrSchedulerStopped
	}
	select {
	case err := <-done:
		return err
	case <-s.stopChan:
		return ErrSchedulerStopped
	case <-s.loopDone:
		return ErrSchedulerStopped
	}
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	defer close(s.loopDone)
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			log.Printf("[SCHEDULER] panic: %v\n%s", r, stack)
			s.running.Store(false)
			if s.OnPanic != nil {
				s.OnPanic(r, stack)
			}
		}
	}()

	interval := s.tickInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return

		case fn := <-s.commands:
			fn(s.ctrl)

		case <-ticker.C:
			s.drainCommands()
			s.ctrl.Tick()
			s.tickCount.Add(1)

			// Slow down while paused, frames still refresh
			want := s.tickInterval
			if s.ctrl.Phase() == components.PhasePaused {
				want = constants.PausedTickInterval
			}
			if want != interval {
				interval = want
				ticker.Reset(interval)
			}
		}
	}
}

func (s *Scheduler) drainCommands() {
	for {
		select {
		case fn := <-s.commands:
			fn(s.ctrl)
		default:
			return
		}
	}
}
