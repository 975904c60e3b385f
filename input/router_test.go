package input

import (
	"testing"
	"time"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/engine"
	"github.com/ScaratP/TypingMonster/theme"
)

type routerHarness struct {
	sched    *engine.Scheduler
	settings *theme.Settings
	router   *Router
}

func newRouterHarness(t *testing.T) *routerHarness {
	t.Helper()
	settings := theme.NewSettings(theme.Default())
	ctrl, err := engine.NewController(settings)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	sched := engine.NewScheduler(ctrl, time.Millisecond)
	sched.Start()
	t.Cleanup(sched.Stop)
	return &routerHarness{sched: sched, settings: settings, router: NewRouter(sched, ctrl, settings)}
}

func (h *routerHarness) phase(t *testing.T) components.Phase {
	t.Helper()
	var p components.Phase
	if err := h.sched.Call(func(c *engine.Controller) error {
		p = c.Phase()
		return nil
	}); err != nil {
		t.Fatalf("Call: %v", err)
	}
	return p
}

func TestRouterLifecycle(t *testing.T) {
	h := newRouterHarness(t)

	// Esc before start is ignored
	h.router.Route(Intent{Type: IntentPause})
	if p := h.phase(t); p != components.PhaseNotStarted {
		t.Fatalf("phase = %s, want NotStarted", p)
	}

	steps := []struct {
		intent IntentType
		want   components.Phase
	}{
		{IntentStart, components.PhaseRunning},
		{IntentStart, components.PhaseRunning}, // Enter while running does nothing
		{IntentPause, components.PhasePaused},
		{IntentPause, components.PhaseRunning},
		{IntentRestart, components.PhaseRunning},
	}
	for i, s := range steps {
		if out := h.router.Route(Intent{Type: s.intent}); out != OutcomeContinue {
			t.Fatalf("step %d: outcome %v", i, out)
		}
		if p := h.phase(t); p != s.want {
			t.Fatalf("step %d (%s): phase = %s, want %s", i, s.intent, p, s.want)
		}
	}

	if err := h.sched.Call(func(c *engine.Controller) error { return c.End() }); err != nil {
		t.Fatalf("End: %v", err)
	}
	// Game-over screen ignores Enter until it settles
	h.router.Route(Intent{Type: IntentStart})
	if p := h.phase(t); p != components.PhaseEnded {
		t.Errorf("phase = %s, want Ended before settle", p)
	}
}

func TestRouterRestartFromStartScreen(t *testing.T) {
	h := newRouterHarness(t)
	h.router.Route(Intent{Type: IntentRestart})
	if p := h.phase(t); p != components.PhaseRunning {
		t.Errorf("phase = %s, want Running", p)
	}
}

func TestRouterSelection(t *testing.T) {
	h := newRouterHarness(t)
	catalog := h.settings.Catalog()

	themes := catalog.ThemeIDs()
	h.router.Route(Intent{Type: IntentThemeNext})
	if got := h.settings.ThemeID(); got != themes[1] {
		t.Errorf("theme = %s, want %s", got, themes[1])
	}
	h.router.Route(Intent{Type: IntentThemePrev})
	h.router.Route(Intent{Type: IntentThemePrev})
	if got := h.settings.ThemeID(); got != themes[len(themes)-1] {
		t.Errorf("theme = %s, want wrap to %s", got, themes[len(themes)-1])
	}

	h.router.Route(Intent{Type: IntentLevelNext})
	if got := h.settings.LevelID(); got != catalog.LevelIDs()[1] {
		t.Errorf("level = %d", got)
	}
	h.router.Route(Intent{Type: IntentLevelPrev})
	if got := h.settings.LevelID(); got != catalog.LevelIDs()[0] {
		t.Errorf("level = %d after prev", got)
	}

	h.router.Route(Intent{Type: IntentDifficultyNext})
	if got := h.settings.DifficultyID(); got != "hard" {
		t.Errorf("difficulty = %s, want hard", got)
	}
	h.router.Route(Intent{Type: IntentDifficultyPrev})
	h.router.Route(Intent{Type: IntentDifficultyPrev})
	if got := h.settings.DifficultyID(); got != "easy" {
		t.Errorf("difficulty = %s, want easy", got)
	}
}

func TestRouterOutcomes(t *testing.T) {
	h := newRouterHarness(t)

	tests := []struct {
		in   Intent
		want Outcome
	}{
		{Intent{Type: IntentQuit}, OutcomeQuit},
		{Intent{Type: IntentResize}, OutcomeResize},
		{Intent{Type: IntentToggleDebug}, OutcomeToggleDebug},
		{Intent{Type: IntentTypeChar, Char: 'x'}, OutcomeContinue},
		{Intent{}, OutcomeContinue},
	}
	for _, tt := range tests {
		if got := h.router.Route(tt.in); got != tt.want {
			t.Errorf("Route(%s) = %v, want %v", tt.in.Type, got, tt.want)
		}
	}
}
