package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalogData []byte

// Catalog is the immutable lookup of themes, levels and difficulty presets
type Catalog struct {
	themes     map[string]Theme
	themeOrder []string

	levels     map[int]LevelSpec
	levelOrder []int

	difficulties    map[string]DifficultyPreset
	difficultyOrder []string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog, panics if the embedded data is broken
func Default() *Catalog {
	defaultOnce.Do(func() {
		raw, err := decodeRaw(defaultCatalogData)
		if err != nil {
			panic(fmt.Sprintf("theme: embedded catalog: %v", err))
		}
		c, err := raw.build()
		if err != nil {
			panic(fmt.Sprintf("theme: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a catalog document and merges it over the built-in catalog by id
func Load(data []byte) (*Catalog, error) {
	base, err := decodeRaw(defaultCatalogData)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	user, err := decodeRaw(data)
	if err != nil {
		return nil, err
	}
	base.merge(user)
	return base.build()
}

// LoadFile reads a user catalog file, see Load
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Theme returns the theme with the given id
func (c *Catalog) Theme(id string) (Theme, error) {
	t, ok := c.themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	return t, nil
}

// Level returns the level spec with the given number
func (c *Catalog) Level(id int) (LevelSpec, error) {
	l, ok := c.levels[id]
	if !ok {
		return LevelSpec{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return l, nil
}

// Difficulty returns the difficulty preset with the given id
func (c *Catalog) Difficulty(id string) (DifficultyPreset, error) {
	d, ok := c.difficulties[id]
	if !ok {
		return DifficultyPreset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, id)
	}
	return d, nil
}

// Config composes the effective level configuration
func (c *Catalog) Config(level int, difficulty string) (LevelConfig, error) {
	l, err := c.Level(level)
	if err != nil {
		return LevelConfig{}, err
	}
	d, err := c.Difficulty(difficulty)
	if err != nil {
		return LevelConfig{}, err
	}
	return Compose(l, d), nil
}

// ThemeIDs returns theme ids in display order
func (c *Catalog) ThemeIDs() []string {
	return append([]string(nil), c.themeOrder...)
}

// LevelIDs returns level numbers in ascending order
func (c *Catalog) LevelIDs() []int {
	return append([]int(nil), c.levelOrder...)
}

// DifficultyIDs returns difficulty ids in display order
func (c *Catalog) DifficultyIDs() []string {
	return append([]string(nil), c.difficultyOrder...)
}

// --- TOML document ---

type rawCatalog struct {
	ThemeOrder      []string                     `toml:"theme_order"`
	DifficultyOrder []string                     `toml:"difficulty_order"`
	Themes          map[string]rawTheme          `toml:"themes"`
	Aliases         map[string]map[string]string `toml:"aliases"`
	Levels          map[string]rawLevel          `toml:"levels"`
	Difficulties    map[string]rawDifficulty     `toml:"difficulties"`
}

type rawTheme struct {
	Name            string   `toml:"name"`
	Pool            []string `toml:"pool"`
	Aliases         string   `toml:"aliases"`
	CaseInsensitive bool     `toml:"case_insensitive"`
	FirstCharOnly   bool     `toml:"first_char_only"`
}

type rawLevel struct {
	Name  string  `toml:"name"`
	Speed float64 `toml:"speed"`
	Count int     `toml:"count"`
	Size  float64 `toml:"size"`
}

type rawDifficulty struct {
	Name               string  `toml:"name"`
	SpeedMultiplier    float64 `toml:"speed_multiplier"`
	ScoreFactor        float64 `toml:"score_factor"`
	DifficultyIncrease float64 `toml:"difficulty_increase"`
}

func decodeRaw(data []byte) (*rawCatalog, error) {
	var raw rawCatalog
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return &raw, nil
}

// merge overlays other onto r; entries with the same id are replaced
func (r *rawCatalog) merge(other *rawCatalog) {
	if r.Themes == nil {
		r.Themes = make(map[string]rawTheme)
	}
	if r.Aliases == nil {
		r.Aliases = make(map[string]map[string]string)
	}
	if r.Levels == nil {
		r.Levels = make(map[string]rawLevel)
	}
	if r.Difficulties == nil {
		r.Difficulties = make(map[string]rawDifficulty)
	}

	for id, t := range other.Themes {
		if _, exists := r.Themes[id]; !exists && !contains(other.ThemeOrder, id) {
			r.ThemeOrder = append(r.ThemeOrder, id)
		}
		r.Themes[id] = t
	}
	for name, a := range other.Aliases {
		r.Aliases[name] = a
	}
	for id, l := range other.Levels {
		r.Levels[id] = l
	}
	for id, d := range other.Difficulties {
		if _, exists := r.Difficulties[id]; !exists && !contains(other.DifficultyOrder, id) {
			r.DifficultyOrder = append(r.DifficultyOrder, id)
		}
		r.Difficulties[id] = d
	}
	if len(other.ThemeOrder) > 0 {
		r.ThemeOrder = other.ThemeOrder
	}
	if len(other.DifficultyOrder) > 0 {
		r.DifficultyOrder = other.DifficultyOrder
	}
}

func (r *rawCatalog) build() (*Catalog, error) {
	c := &Catalog{
		themes:       make(map[string]Theme, len(r.Themes)),
		levels:       make(map[int]LevelSpec, len(r.Levels)),
		difficulties: make(map[string]DifficultyPreset, len(r.Difficulties)),
	}

	aliasTables := make(map[string]map[rune]string, len(r.Aliases))
	for name, table := range r.Aliases {
		m := make(map[rune]string, len(table))
		for key, canonical := range table {
			if utf8.RuneCountInString(key) != 1 {
				return nil, fmt.Errorf("%w: alias table %q key %q is not a single character", ErrInvalidCatalog, name, key)
			}
			k, _ := utf8.DecodeRuneInString(key)
			m[k] = canonical
		}
		aliasTables[name] = m
	}

	for id, rt := range r.Themes {
		if len(rt.Pool) == 0 {
			return nil, fmt.Errorf("%w: theme %q has an empty pool", ErrInvalidCatalog, id)
		}
		t := Theme{
			ID:                 id,
			Name:               rt.Name,
			Pool:               append([]string(nil), rt.Pool...),
			CaseInsensitive:    rt.CaseInsensitive,
			FirstCharOnlyMatch: rt.FirstCharOnly,
		}
		if t.Name == "" {
			t.Name = id
		}
		if rt.Aliases != "" {
			table, ok := aliasTables[rt.Aliases]
			if !ok {
				return nil, fmt.Errorf("%w: theme %q references missing alias table %q", ErrInvalidCatalog, id, rt.Aliases)
			}
			t.Aliases = table
		}
		c.themes[id] = t
	}
	if len(c.themes) == 0 {
		return nil, fmt.Errorf("%w: no themes", ErrInvalidCatalog)
	}
	order, err := resolveOrder(r.ThemeOrder, c.themes)
	if err != nil {
		return nil, fmt.Errorf("%w: theme_order: %v", ErrInvalidCatalog, err)
	}
	c.themeOrder = order

	for key, rl := range r.Levels {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: level key %q is not a positive number", ErrInvalidCatalog, key)
		}
		if rl.Count <= 0 || rl.Size <= 0 || rl.Speed <= 0 {
			return nil, fmt.Errorf("%w: level %d needs positive speed, count and size", ErrInvalidCatalog, id)
		}
		c.levels[id] = LevelSpec{ID: id, Name: rl.Name, Speed: rl.Speed, Count: rl.Count, Size: rl.Size}
		c.levelOrder = append(c.levelOrder, id)
	}
	if len(c.levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidCatalog)
	}
	sort.Ints(c.levelOrder)

	for id, rd := range r.Difficulties {
		if rd.SpeedMultiplier <= 0 || rd.ScoreFactor <= 0 || rd.DifficultyIncrease <= 0 {
			return nil, fmt.Errorf("%w: difficulty %q needs positive factors", ErrInvalidCatalog, id)
		}
		name := rd.Name
		if name == "" {
			name = id
		}
		c.difficulties[id] = DifficultyPreset{
			ID:                 id,
			Name:               name,
			SpeedMultiplier:    rd.SpeedMultiplier,
			ScoreFactor:        rd.ScoreFactor,
			DifficultyIncrease: rd.DifficultyIncrease,
		}
	}
	if len(c.difficulties) == 0 {
		return nil, fmt.Errorf("%w: no difficulties", ErrInvalidCatalog)
	}
	dorder, err := resolveOrder(r.DifficultyOrder, c.difficulties)
	if err != nil {
		return nil, fmt.Errorf("%w: difficulty_order: %v", ErrInvalidCatalog, err)
	}
	c.difficultyOrder = dorder

	return c, nil
}

// resolveOrder validates an explicit order and appends any unlisted ids sorted
func resolveOrder[T any](explicit []string, items map[string]T) ([]string, error) {
	seen := make(map[string]bool, len(items))
	order := make([]string, 0, len(items))
	for _, id := range explicit {
		if _, ok := items[id]; !ok {
			return nil, fmt.Errorf("unknown id %q", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}

	var rest []string
	for id := range items {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(order, rest...), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
