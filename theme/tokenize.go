package theme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Tokenize splits s into user-perceived characters (grapheme clusters), NFC-normalised
// A base letter with a combining tone mark is one multi-rune token
func Tokenize(s string) []string {
	s = norm.NFC.String(s)
	tokens := make([]string, 0, utf8.RuneCountInString(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		tokens = append(tokens, g.Str())
	}
	return tokens
}

// IsMultiRune reports whether a token holds more than one rune
func IsMultiRune(token string) bool {
	return utf8.RuneCountInString(token) > 1
}
