package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]IntentType {
	reg := make(map[string]IntentType, len(intentNames))
	for i, name := range intentNames {
		t := IntentType(i)
		// Not bindable: produced by events other than special keys
		if t == IntentResize || t == IntentTypeChar {
			continue
		}
		reg[name] = t
	}
	return reg
}

// ActionNames returns the bindable action names
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for i, name := range intentNames {
		if _, ok := actionRegistry[name]; ok && IntentType(i) != IntentNone {
			names = append(names, name)
		}
	}
	return names
}
