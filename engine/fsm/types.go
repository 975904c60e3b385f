// Package fsm is a small finite state machine whose graph is loaded from TOML.
// States, triggers and the actions bound to them live in data; behaviour is
// injected by registering named actions and guards before loading.
package fsm

import "errors"

var (
	// ErrNoTransition is returned when the active state has no transition for a trigger
	ErrNoTransition = errors.New("no transition")
	// ErrNotInitialized is returned when the machine is fired before Init
	ErrNotInitialized = errors.New("machine not initialized")
)

// Machine is the generic flat state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.Controller)
// Not safe for concurrent use
type Machine[T any] struct {
	// Graph data (immutable after load)
	nodes   map[string]*Node[T]
	initial string

	// Runtime state
	active string

	// Dependency injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node is one state of the graph
type Node[T any] struct {
	Name string

	// Lifecycle actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition links a trigger in one state to a target state
type Transition[T any] struct {
	Trigger string
	Target  string
	Guard   GuardFunc[T] // nil = always true
	Actions []Action[T]  // run between exit and enter
}

// Action is a side effect with its pre-compiled arguments
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
