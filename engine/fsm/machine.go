package fsm

import (
	"fmt"
	"sort"
)

// NewMachine creates an empty FSM; register actions and guards, then LoadConfig and Init
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[string]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.initial]
	if !ok {
		return fmt.Errorf("initial state '%s' not loaded", m.initial)
	}
	m.active = node.Name
	run(ctx, node.OnEnter)
	return nil
}

// Fire takes the first transition of the active state whose trigger matches and whose guard passes
// Order: OnExit of source, transition actions, OnEnter of target; self transitions run both
// Returns ErrNoTransition (wrapped) and changes nothing when no transition applies
func (m *Machine[T]) Fire(ctx T, trigger string) error {
	node, ok := m.nodes[m.active]
	if !ok {
		return ErrNotInitialized
	}

	for _, tr := range node.Transitions {
		if tr.Trigger != trigger {
			continue
		}
		if tr.Guard != nil && !tr.Guard(ctx) {
			continue
		}
		target := m.nodes[tr.Target]

		run(ctx, node.OnExit)
		run(ctx, tr.Actions)
		m.active = target.Name
		run(ctx, target.OnEnter)
		return nil
	}

	return fmt.Errorf("%w: %s in state %s", ErrNoTransition, trigger, m.active)
}

// Can reports whether trigger has a transition from the active state, ignoring guards
func (m *Machine[T]) Can(trigger string) bool {
	node, ok := m.nodes[m.active]
	if !ok {
		return false
	}
	for _, tr := range node.Transitions {
		if tr.Trigger == trigger {
			return true
		}
	}
	return false
}

// State returns the active state name, empty before Init
func (m *Machine[T]) State() string {
	return m.active
}

// Triggers returns the triggers accepted by the active state, sorted
func (m *Machine[T]) Triggers() []string {
	node, ok := m.nodes[m.active]
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(node.Transitions))
	out := make([]string, 0, len(node.Transitions))
	for _, tr := range node.Transitions {
		if !seen[tr.Trigger] {
			seen[tr.Trigger] = true
			out = append(out, tr.Trigger)
		}
	}
	sort.Strings(out)
	return out
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.active]; ok {
		run(ctx, node.OnExit)
	}
	return m.Init(ctx)
}

func run[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}
