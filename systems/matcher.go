package systems

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/theme"
)

// Matcher maps a keystroke to the target's next token under a theme's matching capabilities
// Not safe for concurrent use, owned by the game loop
type Matcher struct {
	fold cases.Caser
}

// NewMatcher creates a matcher with Unicode case folding
func NewMatcher() *Matcher {
	return &Matcher{fold: cases.Fold()}
}

// Matches reports whether input is accepted for the target's first remaining token
// Rules in order, first match wins: theme alias, exact, case-folded, first rune of a multi-rune token
// Never mutates the target
func (mt *Matcher) Matches(th theme.Theme, target *components.Monster, input rune) bool {
	head, ok := target.Head()
	if !ok {
		return false
	}
	head = norm.NFC.String(head)
	in := norm.NFC.String(string(input))

	if canonical, ok := th.Alias(input); ok && norm.NFC.String(canonical) == head {
		return true
	}

	if in == head {
		return true
	}

	if th.CaseInsensitive && mt.foldEqual(in, head) {
		return true
	}

	if th.FirstCharOnlyMatch && theme.IsMultiRune(head) {
		first, _ := utf8.DecodeRuneInString(head)
		sub := string(first)
		if sub == in || (th.CaseInsensitive && mt.foldEqual(sub, in)) {
			return true
		}
	}

	return false
}

// Apply moves the leading token from Remaining to Typed and reports completion
// Callers invoke Apply only after Matches accepted the input; an empty target is left alone and never completes again
func (mt *Matcher) Apply(target *components.Monster) bool {
	if len(target.Remaining) == 0 {
		return false
	}
	target.Typed = append(target.Typed, target.Remaining[0])
	target.Remaining = target.Remaining[1:]
	return len(target.Remaining) == 0
}

func (mt *Matcher) foldEqual(a, b string) bool {
	return mt.fold.String(a) == mt.fold.String(b)
}
