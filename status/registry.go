// Package status holds lock-free metrics written by the game loop and read by the debug overlay.
package status

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// Metric names written by the controller
const (
	MetricTicks      = "engine.ticks"
	MetricPhase      = "game.phase"
	MetricPaused     = "game.paused"
	MetricScore      = "game.score"
	MetricTheme      = "game.theme"
	MetricActive     = "population.active"
	MetricSlots      = "population.slots"
	MetricDifficulty = "difficulty.multiplier"
	MetricHits       = "input.hits"
	MetricMisses     = "input.misses"
	MetricDropped    = "input.dropped"
	MetricTimers     = "timers.pending"
)

// Registry is the central metrics facade
// The controller caches pointers at construction; ticks write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines renders every metric as "name=value", sorted by name
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	lines = r.Bools.Format(lines, func(v *atomic.Bool) string { return strconv.FormatBool(v.Load()) })
	lines = r.Ints.Format(lines, func(v *atomic.Int64) string { return strconv.FormatInt(v.Load(), 10) })
	lines = r.Floats.Format(lines, func(v *AtomicFloat) string { return fmt.Sprintf("%.2f", v.Load()) })
	lines = r.Strings.Format(lines, func(v *AtomicString) string { return v.Load() })
	sort.Strings(lines)
	return lines
}
