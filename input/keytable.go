package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps special keys to intents
// Printable runes are never bound; they always feed the typing input
type KeyTable struct {
	SpecialKeys map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlQ:   IntentQuit,
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyF2:      IntentToggleDebug,
			tcell.KeyEnter:   IntentStart,
			tcell.KeyEsc:     IntentPause,
			tcell.KeyCtrlR:   IntentRestart,
			tcell.KeyTab:     IntentThemeNext,
			tcell.KeyBacktab: IntentThemePrev,
			tcell.KeyRight:   IntentLevelNext,
			tcell.KeyLeft:    IntentLevelPrev,
			tcell.KeyUp:      IntentDifficultyNext,
			tcell.KeyDown:    IntentDifficultyPrev,
		},
	}
}

// Lookup returns the intent bound to key
func (kt *KeyTable) Lookup(key tcell.Key) (IntentType, bool) {
	t, ok := kt.SpecialKeys[key]
	if !ok || t == IntentNone {
		return IntentNone, false
	}
	return t, true
}

// Merge applies a sparse override on top of kt; IntentNone unbinds a key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	if kt.SpecialKeys == nil {
		kt.SpecialKeys = make(map[tcell.Key]IntentType, len(override.SpecialKeys))
	}
	for k, v := range override.SpecialKeys {
		if v == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = v
	}
}
