package input

import (
	"errors"
	"log"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/engine"
	"github.com/ScaratP/TypingMonster/engine/fsm"
	"github.com/ScaratP/TypingMonster/theme"
)

// Outcome tells the event loop what to do after routing an intent
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
	OutcomeResize
	OutcomeToggleDebug
)

// Router applies intents to the game
// Lifecycle commands run on the scheduler goroutine; typing goes straight to the lock-free feed
type Router struct {
	sched    *engine.Scheduler
	ctrl     *engine.Controller
	settings *theme.Settings
}

// NewRouter creates a router; ctrl must be the controller sched drives
func NewRouter(sched *engine.Scheduler, ctrl *engine.Controller, settings *theme.Settings) *Router {
	return &Router{sched: sched, ctrl: ctrl, settings: settings}
}

// Route applies one intent
func (r *Router) Route(in Intent) Outcome {
	switch in.Type {
	case IntentNone:
	case IntentTypeChar:
		r.ctrl.PushKey(in.Char)

	case IntentQuit:
		return OutcomeQuit
	case IntentResize:
		return OutcomeResize
	case IntentToggleDebug:
		return OutcomeToggleDebug

	case IntentStart:
		r.call(in.Type, func(c *engine.Controller) error {
			switch c.Phase() {
			case components.PhaseNotStarted:
				return c.Start()
			case components.PhaseEnded:
				if c.Settled() {
					return c.Acknowledge()
				}
			}
			return nil
		})
	case IntentPause:
		r.call(in.Type, func(c *engine.Controller) error { return c.TogglePause() })
	case IntentRestart:
		r.call(in.Type, func(c *engine.Controller) error {
			if c.Phase() == components.PhaseNotStarted {
				return c.Start()
			}
			return c.Restart()
		})

	case IntentThemeNext, IntentThemePrev:
		id := r.settings.CycleTheme(step(in.Type == IntentThemeNext))
		log.Printf("[INPUT] theme -> %s", id)
	case IntentLevelNext, IntentLevelPrev:
		level := r.settings.CycleLevel(step(in.Type == IntentLevelNext))
		log.Printf("[INPUT] level -> %d", level)
	case IntentDifficultyNext, IntentDifficultyPrev:
		id := r.settings.CycleDifficulty(step(in.Type == IntentDifficultyNext))
		log.Printf("[INPUT] difficulty -> %s", id)
	}
	return OutcomeContinue
}

// call runs fn on the scheduler; commands invalid in the current phase are ignored
func (r *Router) call(t IntentType, fn func(*engine.Controller) error) {
	err := r.sched.Call(fn)
	switch {
	case err == nil:
	case errors.Is(err, fsm.ErrNoTransition):
		log.Printf("[INPUT] %s ignored: %v", t, err)
	default:
		log.Printf("[INPUT] %s failed: %v", t, err)
	}
}

func step(forward bool) int {
	if forward {
		return 1
	}
	return -1
}
