package systems

import (
	"testing"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/theme"
)

func target(text string) *components.Monster {
	m := monster(0, theme.Tokenize(text)...)
	return &m
}

// Test Matches never mutates the target
func TestMatchesDoesNotMutate(t *testing.T) {
	mt := NewMatcher()
	th := theme.Theme{ID: "t", Pool: []string{"ab"}}
	m := target("ab")

	for i := 0; i < 5; i++ {
		mt.Matches(th, m, 'a')
		mt.Matches(th, m, 'z')
	}

	if got := m.RemainingText(); got != "ab" {
		t.Errorf("Remaining = %q, want %q", got, "ab")
	}
	if len(m.Typed) != 0 {
		t.Errorf("Typed = %v, want empty", m.Typed)
	}
}

// Test sequential correct input completes only on the last token
func TestApplyRoundTrip(t *testing.T) {
	mt := NewMatcher()
	th := theme.Theme{ID: "t", Pool: []string{"ab"}}
	m := target("ab")

	if !mt.Matches(th, m, 'a') {
		t.Fatal("'a' should match first token")
	}
	if mt.Apply(m) {
		t.Fatal("completed after first token")
	}
	if mt.Matches(th, m, 'a') {
		t.Fatal("'a' should not match second token")
	}
	if !mt.Matches(th, m, 'b') {
		t.Fatal("'b' should match second token")
	}
	if !mt.Apply(m) {
		t.Fatal("not completed after last token")
	}

	if got := m.TypedText(); got != "ab" {
		t.Errorf("Typed = %q, want %q", got, "ab")
	}
	if len(m.Remaining) != 0 {
		t.Errorf("Remaining = %v, want empty", m.Remaining)
	}
}

func TestMatchRules(t *testing.T) {
	bopomofo := theme.Theme{
		ID:      "bopomofo",
		Aliases: map[rune]string{'3': "ˇ", '1': "ㄅ"},
	}
	english := theme.Theme{ID: "english", CaseInsensitive: true}
	plain := theme.Theme{ID: "plain"}
	compound := theme.Theme{
		ID:                 "compound",
		Aliases:            map[rune]string{'2': "ㄉ"},
		FirstCharOnlyMatch: true,
	}
	mixed := theme.Theme{ID: "mixed", CaseInsensitive: true, FirstCharOnlyMatch: true}

	tests := []struct {
		name  string
		th    theme.Theme
		text  string
		input rune
		want  bool
	}{
		{"alias tone mark", bopomofo, "ˇ", '3', true},
		{"alias initial", bopomofo, "ㄅ", '1', true},
		{"alias to other token", bopomofo, "ㄆ", '1', false},
		{"exact glyph without alias", bopomofo, "ˇ", 'ˇ', true},
		{"case-insensitive upper target", english, "A", 'a', true},
		{"case-insensitive lower target", english, "a", 'A', true},
		{"case-sensitive theme", plain, "A", 'a', false},
		{"exact", plain, "x", 'x', true},
		{"mismatch", plain, "x", 'y', false},
		{"first char of compound", compound, "ㄉ\u0301", 'ㄉ', true},
		{"single-rune token ignores first-char rule", plain, "x", 'y', false},
		{"first char folded", mixed, "B\u0301", 'b', true},
		{"first char rule off", plain, "B\u0301", 'B', false},
	}

	mt := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := target(tt.text)
			if got := mt.Matches(tt.th, m, tt.input); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.text, tt.input, got, tt.want)
			}
		})
	}
}

// Test a multi-rune token is consumed whole under first-char matching
func TestApplyMultiRuneToken(t *testing.T) {
	mt := NewMatcher()
	th := theme.Theme{ID: "c", FirstCharOnlyMatch: true}
	m := target("x\u0301y")
	if len(m.Remaining) != 2 {
		t.Fatalf("tokens = %q, want 2", m.Remaining)
	}

	if !mt.Matches(th, m, 'x') {
		t.Fatal("first rune should match cluster")
	}
	mt.Apply(m)
	if got := m.RemainingText(); got != "y" {
		t.Errorf("Remaining = %q, want %q", got, "y")
	}
}

func TestMatchEmptyTarget(t *testing.T) {
	mt := NewMatcher()
	m := &components.Monster{Active: true, Radius: 10}
	if mt.Matches(theme.Theme{}, m, 'a') {
		t.Error("empty target should never match")
	}
	if mt.Apply(m) {
		t.Error("Apply on an empty target reported a second completion")
	}
	if len(m.Typed) != 0 || len(m.Remaining) != 0 {
		t.Errorf("Apply changed an empty target: typed %q remaining %q", m.Typed, m.Remaining)
	}
}
