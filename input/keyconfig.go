package input

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

type rawKeymap struct {
	Keys map[string]string `toml:"keys"`
}

// keyByName indexes tcell's key names case-insensitively, "Ctrl-R" and "ctrl-r" both resolve
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	// tcell names Esc only through its alias
	m["escape"] = tcell.KeyEsc
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only keys present in the [keys] table are populated; "none" unbinds
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw rawKeymap
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{SpecialKeys: make(map[tcell.Key]IntentType, len(raw.Keys))}
	for name, action := range raw.Keys {
		key, ok := keyByName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("[keys] %q: %w", name, ErrUnknownKey)
		}
		intent, ok := actionRegistry[action]
		if !ok {
			return nil, fmt.Errorf("[keys] %q = %q: %w", name, action, ErrUnknownAction)
		}
		kt.SpecialKeys[key] = intent
	}
	return kt, nil
}

// LoadKeyFile reads a keymap file and merges it over the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	kt := DefaultKeyTable()
	kt.Merge(override)
	return kt, nil
}
