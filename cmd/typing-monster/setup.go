package main

import (
	"io"
	"log"

	"github.com/ScaratP/TypingMonster/config"
	"github.com/ScaratP/TypingMonster/input"
	"github.com/ScaratP/TypingMonster/theme"
)

// loadSettings layers the settings file, .env, environment and flags
// Problems are reported and the layer is skipped
// persisted is the file layer alone, nil when the file is malformed and must not be overwritten
func loadSettings(o options, stderr io.Writer) (cfg config.Settings, persisted *config.Settings) {
	cfg, err := config.Load(o.settings)
	if err != nil {
		warn(stderr, "%v, using defaults", err)
	} else {
		file := cfg
		persisted = &file
	}
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		warn(stderr, "%v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		warn(stderr, "%v", err)
	}
	o.apply(&cfg)
	return cfg, persisted
}

// loadCatalog returns the user catalog merged over the built-in one, or the built-in one on failure
func loadCatalog(path string, stderr io.Writer) *theme.Catalog {
	if path == "" {
		return theme.Default()
	}
	c, err := theme.LoadFile(path)
	if err != nil {
		warn(stderr, "%v, using the built-in catalog", err)
		log.Printf("[LIFECYCLE] catalog fallback: %v", err)
		return theme.Default()
	}
	return c
}

// newSelection applies the configured selection; unknown ids keep the default
func newSelection(c *theme.Catalog, cfg config.Settings, stderr io.Writer) *theme.Settings {
	s := theme.NewSettings(c)
	if err := s.SetTheme(cfg.Game.Theme); err != nil {
		warn(stderr, "%v, keeping %s", err, s.ThemeID())
	}
	if err := s.SetLevel(cfg.Game.Level); err != nil {
		warn(stderr, "%v, keeping %d", err, s.LevelID())
	}
	if err := s.SetDifficulty(cfg.Game.Difficulty); err != nil {
		warn(stderr, "%v, keeping %s", err, s.DifficultyID())
	}
	return s
}

// loadKeys returns the default bindings with an optional keymap file merged in
func loadKeys(path string, stderr io.Writer) *input.KeyTable {
	if path == "" {
		return input.DefaultKeyTable()
	}
	kt, err := input.LoadKeyFile(path)
	if err != nil {
		warn(stderr, "%v, using default keys", err)
		return input.DefaultKeyTable()
	}
	return kt
}

// rememberSelection copies the final selection back for saving
func rememberSelection(cfg *config.Settings, s *theme.Settings) {
	cfg.Game.Theme = s.ThemeID()
	cfg.Game.Level = s.LevelID()
	cfg.Game.Difficulty = s.DifficultyID()
}
