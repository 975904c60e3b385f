package components

import "testing"

func TestMonsterLifecycle(t *testing.T) {
	m := Monster{X: 10, Y: -20, Radius: 30, FallSpeed: 0.5, Remaining: []string{"a", "b"}, Active: true}

	if !m.Targetable() {
		t.Fatal("Expected fresh monster to be targetable")
	}

	m.Advance()
	if m.Y != -19.5 {
		t.Errorf("Expected Y -19.5 after advance, got %v", m.Y)
	}

	m.Destroy()
	if m.Active || m.Radius != 0 {
		t.Errorf("Expected destroyed monster inactive with zero radius, got %+v", m)
	}
	if m.Targetable() {
		t.Error("Destroyed monster must not be targetable")
	}

	y := m.Y
	m.Advance()
	if m.Y != y {
		t.Error("Inactive monster must not move")
	}

	m.Typed = append(m.Typed, "a")
	m.Reset(-40, 25, []string{"z"})
	if !m.Active || m.Radius != 25 || m.Y != -40 || m.X != 10 || m.FallSpeed != 0.5 {
		t.Errorf("Unexpected state after reset: %+v", m)
	}
	if m.RemainingText() != "z" || m.TypedText() != "" {
		t.Errorf("Expected text reset, got remaining %q typed %q", m.RemainingText(), m.TypedText())
	}
}

func TestMonsterTargetable(t *testing.T) {
	tests := []struct {
		name string
		m    Monster
		want bool
	}{
		{"active with text", Monster{Active: true, Radius: 1, Remaining: []string{"x"}}, true},
		{"inactive", Monster{Active: false, Radius: 1, Remaining: []string{"x"}}, false},
		{"zero radius", Monster{Active: true, Radius: 0, Remaining: []string{"x"}}, false},
		{"empty text", Monster{Active: true, Radius: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Targetable(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMonsterCloneIsDeep(t *testing.T) {
	m := Monster{Remaining: []string{"a", "b"}, Typed: []string{"c"}, Active: true}
	c := m.Clone()
	c.Remaining[0] = "z"
	c.Typed[0] = "z"

	if m.Remaining[0] != "a" || m.Typed[0] != "c" {
		t.Error("Clone shares token storage with the original")
	}
}

func TestGameStateReset(t *testing.T) {
	s := GameState{Phase: PhaseRunning, Score: 42, DifficultyMultiplier: 2.5, Started: true, Hint: "x"}
	s.Reset(1.0)

	if s.Score != 0 || s.DifficultyMultiplier != 1.0 || s.Started || s.Hint != "" {
		t.Errorf("Unexpected state after reset: %+v", s)
	}
	if s.Phase != PhaseRunning {
		t.Errorf("Reset must not touch the phase, got %v", s.Phase)
	}
}

func TestPhaseNames(t *testing.T) {
	for _, p := range []Phase{PhaseNotStarted, PhaseRunning, PhasePaused, PhaseEnded} {
		got, ok := ParsePhase(p.String())
		if !ok || got != p {
			t.Errorf("Round trip of %v failed: %v %v", p, got, ok)
		}
	}
	if _, ok := ParsePhase("Sleeping"); ok {
		t.Error("Expected unknown phase name to fail")
	}
}
