package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine parses terminal events into intents
// Stateless between events: every binding is a single key
type Machine struct {
	table *KeyTable
}

// NewMachine creates a parser over table, DefaultKeyTable when nil
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process returns the intent for ev, IntentNone when the event means nothing to the game
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	}
	return Intent{}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// Alt chords are not characters the player meant to type
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 || !unicode.IsPrint(r) {
			return Intent{}
		}
		return Intent{Type: IntentTypeChar, Char: r}
	}

	if t, ok := m.table.Lookup(ev.Key()); ok {
		return Intent{Type: t}
	}
	return Intent{}
}
