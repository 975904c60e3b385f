package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// tokenWidth returns the cell width of one user-perceived character
// Zero-width clusters still take a cell so they stay visible
func tokenWidth(token string) int {
	w := runewidth.StringWidth(token)
	if w < 1 {
		return 1
	}
	return w
}

// tokensWidth sums the cell widths of a token sequence
func tokensWidth(tokens []string) int {
	total := 0
	for _, t := range tokens {
		total += tokenWidth(t)
	}
	return total
}

// drawToken puts a grapheme cluster at x, combining marks ride on the base rune
// Returns the cell width consumed
func drawToken(screen tcell.Screen, x, y int, token string, style tcell.Style) int {
	runes := []rune(token)
	if len(runes) == 0 {
		return 0
	}
	var combining []rune
	if len(runes) > 1 {
		combining = runes[1:]
	}
	screen.SetContent(x, y, runes[0], combining, style)
	return tokenWidth(token)
}

// drawString writes s from x, clipped at maxX, and returns the next free column
func drawString(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// fillRow paints cells [x0, x1) of a row with blanks in style
func fillRow(screen tcell.Screen, y, x0, x1 int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
