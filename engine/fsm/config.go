package fsm

// RootConfig is the top-level TOML document
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig is a single state definition
type StateConfig struct {
	OnEnter     []ActionConfig     `toml:"on_enter"`
	OnExit      []ActionConfig     `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig is a transition definition
type TransitionConfig struct {
	Trigger string         `toml:"trigger"`
	Target  string         `toml:"target"`
	Guard   string         `toml:"guard"`
	Actions []ActionConfig `toml:"actions"`
}

// ActionConfig names a registered action plus free-form arguments
type ActionConfig struct {
	Action string         `toml:"action"`
	Args   map[string]any `toml:"args"`
}
