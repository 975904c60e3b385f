package main

import (
	"flag"
	"io"

	"github.com/ScaratP/TypingMonster/config"
)

// options are the command-line flags; only flags given explicitly override settings
type options struct {
	theme      string
	level      int
	difficulty string
	catalog    string
	keymap     string
	settings   string
	debug      bool
	list       bool
	seed       int64

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("typing-monster", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.theme, "theme", "", "theme id, see -list")
	fs.IntVar(&o.level, "level", 0, "level number, see -list")
	fs.StringVar(&o.difficulty, "difficulty", "", "difficulty preset, see -list")
	fs.StringVar(&o.catalog, "catalog", "", "TOML catalog merged over the built-in themes and levels")
	fs.StringVar(&o.keymap, "keymap", "", "TOML keymap overriding the default key bindings")
	fs.StringVar(&o.settings, "settings", config.DefaultFile, "INI settings file, saved on exit")
	fs.BoolVar(&o.debug, "debug", false, "log to logs/typing-monster.log and show the metrics panel")
	fs.BoolVar(&o.list, "list", false, "list themes, levels and difficulties, then exit")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 seeds from the clock")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides cfg with explicitly given flags
func (o options) apply(cfg *config.Settings) {
	if o.set["theme"] {
		cfg.Game.Theme = o.theme
	}
	if o.set["level"] {
		cfg.Game.Level = o.level
	}
	if o.set["difficulty"] {
		cfg.Game.Difficulty = o.difficulty
	}
	if o.set["catalog"] {
		cfg.Game.Catalog = o.catalog
	}
	if o.set["keymap"] {
		cfg.Input.Keymap = o.keymap
	}
	if o.set["debug"] {
		cfg.Debug.Enabled = o.debug
	}
}
