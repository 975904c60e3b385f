// Package config layers the player's settings: built-in defaults, an INI file,
// then environment variables (optionally from a .env file). Flags are applied by
// the caller on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/theme"
)

const (
	DefaultFile    = "typing-monster.ini"
	DefaultEnvFile = ".env"

	EnvPrefix     = "TYPING_MONSTER_"
	EnvTheme      = EnvPrefix + "THEME"
	EnvLevel      = EnvPrefix + "LEVEL"
	EnvDifficulty = EnvPrefix + "DIFFICULTY"
	EnvCatalog    = EnvPrefix + "CATALOG"
	EnvKeymap     = EnvPrefix + "KEYMAP"
	EnvDebug      = EnvPrefix + "DEBUG"
)

var ErrInvalidValue = errors.New("invalid config value")

// Settings is the persisted player configuration
type Settings struct {
	Game  GameSection  `ini:"game"`
	Input InputSection `ini:"input"`
	Debug DebugSection `ini:"debug"`
}

type GameSection struct {
	Theme      string        `ini:"theme"`
	Level      int           `ini:"level"`
	Difficulty string        `ini:"difficulty"`
	Catalog    string        `ini:"catalog"` // optional user catalog TOML
	Tick       time.Duration `ini:"tick"`
}

type InputSection struct {
	Keymap string `ini:"keymap"` // optional keymap TOML
}

type DebugSection struct {
	Enabled bool `ini:"enabled"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		Game: GameSection{
			Theme:      theme.DefaultThemeID,
			Level:      theme.DefaultLevelID,
			Difficulty: theme.DefaultDifficultyID,
			Tick:       constants.TickInterval,
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error; a malformed one returns the defaults with the error
func Load(path string) (Settings, error) {
	s := Defaults()

	file, err := ini.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return Defaults(), fmt.Errorf("settings %s: %w", path, err)
	}
	if err := file.MapTo(&s); err != nil {
		return Defaults(), fmt.Errorf("settings %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return Defaults(), fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path
func Save(path string, s Settings) error {
	file := ini.Empty()
	if err := file.ReflectFrom(&s); err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("settings %s: %w", path, err)
	}
	return nil
}

// LoadEnvFile loads a .env file into the process environment without overriding set variables
// A missing file is not an error
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides s from TYPING_MONSTER_* variables
// Values that fail to parse leave the field unchanged and are reported together
func (s *Settings) ApplyEnv() error {
	var errs []error

	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		s.Game.Theme = v
	}
	if v, ok := os.LookupEnv(EnvDifficulty); ok && v != "" {
		s.Game.Difficulty = v
	}
	if v, ok := os.LookupEnv(EnvCatalog); ok {
		s.Game.Catalog = v
	}
	if v, ok := os.LookupEnv(EnvKeymap); ok {
		s.Input.Keymap = v
	}
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvLevel, v))
		} else {
			s.Game.Level = n
		}
	}
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvDebug, v))
		} else {
			s.Debug.Enabled = b
		}
	}

	return errors.Join(errs...)
}

func (s *Settings) validate() error {
	if s.Game.Level <= 0 {
		return fmt.Errorf("%w: level %d", ErrInvalidValue, s.Game.Level)
	}
	if s.Game.Tick <= 0 {
		return fmt.Errorf("%w: tick %s", ErrInvalidValue, s.Game.Tick)
	}
	return nil
}
