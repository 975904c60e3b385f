package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML graph and replaces the machine's nodes
// Validates every reference (states, guards, actions); the machine must be re-initialized after loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return fmt.Errorf("failed to decode FSM config: %w", err)
	}
	if len(config.States) == 0 {
		return fmt.Errorf("FSM config defines no states")
	}

	nodes := make(map[string]*Node[T], len(config.States))

	// Deterministic compile order so errors are stable
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
		}
		node := &Node[T]{Name: name}

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}

		for _, tc := range cfg.Transitions {
			if _, ok := config.States[tc.Target]; !ok {
				return fmt.Errorf("state '%s' transition '%s' references unknown target '%s'", name, tc.Trigger, tc.Target)
			}
			if tc.Trigger == "" {
				return fmt.Errorf("state '%s' has a transition without trigger", name)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				g, ok := m.guardReg[tc.Guard]
				if !ok {
					return fmt.Errorf("state '%s' references unknown guard '%s'", name, tc.Guard)
				}
				guard = g
			}
			actions, err := m.compileActions(tc.Actions)
			if err != nil {
				return fmt.Errorf("state '%s' transition '%s': %w", name, tc.Trigger, err)
			}
			node.Transitions = append(node.Transitions, Transition[T]{
				Trigger: tc.Trigger,
				Target:  tc.Target,
				Guard:   guard,
				Actions: actions,
			})
		}
		nodes[name] = node
	}

	if _, ok := nodes[config.InitialState]; !ok {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}

	m.nodes = nodes
	m.initial = config.InitialState
	m.active = ""
	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{Name: cfg.Action, Func: fn, Args: cfg.Args})
	}
	return actions, nil
}
