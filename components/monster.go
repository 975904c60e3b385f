package components

import "strings"

// Monster is a falling entity carrying the text the player has to type
// Remaining and Typed are token sequences, one token per user-perceived character
// Inactive monsters have Radius 0 and are skipped by targeting and floor checks
type Monster struct {
	X, Y      float64
	Radius    float64
	FallSpeed float64

	Remaining []string
	Typed     []string

	Active bool
}

// Targetable reports whether the monster can receive input
func (m *Monster) Targetable() bool {
	return m.Active && m.Radius > 0 && len(m.Remaining) > 0
}

// Advance moves an active monster down by its fall speed
func (m *Monster) Advance() {
	if !m.Active {
		return
	}
	m.Y += m.FallSpeed
}

// Destroy marks the monster inactive, its slot waits for recycling
func (m *Monster) Destroy() {
	m.Active = false
	m.Radius = 0
}

// Reset revives the monster in place with fresh text, keeping X and fall speed
func (m *Monster) Reset(y, radius float64, text []string) {
	m.Y = y
	m.Radius = radius
	m.Remaining = append(m.Remaining[:0], text...)
	m.Typed = m.Typed[:0]
	m.Active = true
}

// Head returns the first remaining token
func (m *Monster) Head() (string, bool) {
	if len(m.Remaining) == 0 {
		return "", false
	}
	return m.Remaining[0], true
}

// RemainingText joins the remaining tokens
func (m *Monster) RemainingText() string {
	return strings.Join(m.Remaining, "")
}

// TypedText joins the typed tokens
func (m *Monster) TypedText() string {
	return strings.Join(m.Typed, "")
}

// Clone returns a deep copy safe to hand to read-only consumers
func (m *Monster) Clone() Monster {
	c := *m
	c.Remaining = append([]string(nil), m.Remaining...)
	c.Typed = append([]string(nil), m.Typed...)
	return c
}
