// Package render draws engine frames onto a tcell screen.
package render

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/engine"
	"github.com/ScaratP/TypingMonster/status"
)

const debugPanelWidth = 28

// TerminalRenderer handles all terminal rendering
// Render matches engine.RenderFunc and runs on the scheduler goroutine
type TerminalRenderer struct {
	screen tcell.Screen
	now    func() time.Time

	mu         sync.Mutex
	toast      string
	toastUntil time.Time
	registry   *status.Registry
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		now:    time.Now,
	}
}

// SetDebug shows the metrics panel from registry, nil hides it
func (r *TerminalRenderer) SetDebug(registry *status.Registry) {
	r.mu.Lock()
	r.registry = registry
	r.mu.Unlock()
}

// ShowToast displays a short notice in the hint bar for AchievementToastTimeout
func (r *TerminalRenderer) ShowToast(text string) {
	r.mu.Lock()
	r.toast = text
	r.toastUntil = r.now().Add(constants.AchievementToastTimeout)
	r.mu.Unlock()
}

// WorldBounds returns the world size for the current screen size
func (r *TerminalRenderer) WorldBounds() engine.Bounds {
	cols, rows := r.screen.Size()
	return WorldBounds(cols, rows)
}

// Render renders the entire game frame
func (r *TerminalRenderer) Render(f engine.Frame) {
	cols, rows := r.screen.Size()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if cols < constants.MinScreenWidth || rows < constants.MinScreenHeight {
		msg := fmt.Sprintf("terminal too small, need %dx%d", constants.MinScreenWidth, constants.MinScreenHeight)
		drawString(r.screen, 0, 0, cols, msg, defaultStyle.Foreground(RgbOverlayText))
		r.screen.Show()
		return
	}

	l := newLayout(cols, rows, f.Bounds)

	switch f.Phase {
	case components.PhaseNotStarted:
		r.drawStartScreen(f, l, defaultStyle)
	default:
		r.drawFloor(f, l, defaultStyle)
		r.drawMonsters(f, l, defaultStyle)
		r.drawTargetMarker(f, l, defaultStyle)
		if f.Paused || f.Phase == components.PhasePaused {
			r.drawPausedOverlay(l)
		}
		if f.Phase == components.PhaseEnded {
			r.drawGameOver(f, l)
		}
	}

	r.drawStatusBar(f, l)
	r.drawHintBar(f, l, defaultStyle)
	r.drawDebugPanel(l)

	r.screen.Show()
}

// drawStatusBar draws score, selection and the difficulty gauge on the top row
func (r *TerminalRenderer) drawStatusBar(f engine.Frame, l layout) {
	barStyle := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	fillRow(r.screen, 0, 0, l.cols, barStyle)

	left := fmt.Sprintf(" Score %d  Theme %s  Level %d  %s ", f.Score, f.ThemeID, f.Level, f.Difficulty)
	x := drawString(r.screen, 0, 0, l.cols, left, barStyle)

	multiplier := f.DifficultyMultiplier
	if multiplier < constants.BaseDifficultyMultiplier {
		multiplier = constants.BaseDifficultyMultiplier
	}
	progress := (multiplier - constants.BaseDifficultyMultiplier) /
		(constants.DifficultyGaugeCeiling - constants.BaseDifficultyMultiplier)
	gaugeStyle := barStyle.Background(GetDifficultyColor(progress)).Bold(true)
	drawString(r.screen, x, 0, l.cols, fmt.Sprintf(" x%.2f ", multiplier), gaugeStyle)

	label := f.Phase.String()
	if f.Paused {
		label = "Paused"
	}
	label = " " + label + " "
	lx := l.cols - runewidth.StringWidth(label)
	if lx > x {
		drawString(r.screen, lx, 0, l.cols, label, barStyle.Bold(true))
	}
}

// drawHintBar draws the hint on the bottom row, an active toast takes the right side
func (r *TerminalRenderer) drawHintBar(f engine.Frame, l layout, defaultStyle tcell.Style) {
	y := l.hintRow()
	hintStyle := defaultStyle.Foreground(RgbHintText)
	fillRow(r.screen, y, 0, l.cols, defaultStyle)

	maxX := l.cols
	if toast, ok := r.activeToast(); ok {
		text := " ★ " + toast + " "
		tx := l.cols - runewidth.StringWidth(text)
		if tx < 0 {
			tx = 0
		}
		drawString(r.screen, tx, y, l.cols, text, tcell.StyleDefault.Background(RgbToastBg).Foreground(RgbStatusText))
		maxX = tx
	}
	drawString(r.screen, 1, y, maxX, f.Hint, hintStyle)
}

func (r *TerminalRenderer) activeToast() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.toast == "" {
		return "", false
	}
	if !r.now().Before(r.toastUntil) {
		r.toast = ""
		return "", false
	}
	return r.toast, true
}

// drawFloor draws the line monsters must not reach
func (r *TerminalRenderer) drawFloor(f engine.Frame, l layout, defaultStyle tcell.Style) {
	floor := f.Floor
	if floor <= 0 {
		floor = f.Bounds.Floor(constants.BottomBarHeight)
	}
	y := l.row(floor)
	if !l.inPlayArea(y) {
		return
	}
	style := defaultStyle.Foreground(RgbFloor)
	for x := 0; x < l.cols; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawMonsters draws every visible monster as its typed and remaining text on a plate
func (r *TerminalRenderer) drawMonsters(f engine.Frame, l layout, defaultStyle tcell.Style) {
	for i := range f.Monsters {
		m := &f.Monsters[i]
		if !m.Active {
			continue
		}
		y := l.row(m.Y)
		if !l.inPlayArea(y) {
			continue
		}
		r.drawMonster(m, i == f.Target, l, y, defaultStyle)
	}
}

func (r *TerminalRenderer) drawMonster(m *components.Monster, target bool, l layout, y int, defaultStyle tcell.Style) {
	width := tokensWidth(m.Typed) + tokensWidth(m.Remaining)
	// One cell of plate on each side
	x := l.column(m.X) - (width+2)/2

	body := RgbMonsterBody
	if target {
		body = RgbTargetBody
	}
	plate := defaultStyle.Background(body)

	r.putCell(l, x, y, ' ', plate)
	x++
	for _, tok := range m.Typed {
		x += r.putToken(l, x, y, tok, plate.Foreground(RgbMonsterTyped))
	}
	for j, tok := range m.Remaining {
		style := plate.Foreground(RgbMonsterRemaining)
		if target && j == 0 {
			style = plate.Foreground(RgbNextChar).Bold(true).Underline(true)
		}
		x += r.putToken(l, x, y, tok, style)
	}
	r.putCell(l, x, y, ' ', plate)
}

// drawTargetMarker draws the arrow above the current target
func (r *TerminalRenderer) drawTargetMarker(f engine.Frame, l layout, defaultStyle tcell.Style) {
	m, ok := f.TargetMonster()
	if !ok {
		return
	}
	y := l.row(m.Y) - 1
	if !l.inPlayArea(y) {
		return
	}
	r.putCell(l, l.column(m.X), y, constants.TargetMarker, defaultStyle.Foreground(RgbTargetMarker).Bold(true))
}

func (r *TerminalRenderer) putCell(l layout, x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= l.cols {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// putToken clips wide tokens that would straddle the screen edge
func (r *TerminalRenderer) putToken(l layout, x, y int, token string, style tcell.Style) int {
	w := tokenWidth(token)
	if x < 0 || x+w > l.cols {
		return w
	}
	return drawToken(r.screen, x, y, token, style)
}

// drawStartScreen lists the current selection and the keys
func (r *TerminalRenderer) drawStartScreen(f engine.Frame, l layout, defaultStyle tcell.Style) {
	lines := []string{
		"TYPING MONSTER",
		"",
		fmt.Sprintf("Theme       %-10s  Tab", f.ThemeID),
		fmt.Sprintf("Level       %-10d  ←/→", f.Level),
		fmt.Sprintf("Difficulty  %-10s  ↑/↓", f.Difficulty),
		"",
		"Enter start   Esc pause   Ctrl+R restart   Ctrl+Q quit",
	}
	r.drawBox(l, lines, RgbOverlayTitle)
}

func (r *TerminalRenderer) drawPausedOverlay(l layout) {
	r.drawBox(l, []string{"PAUSED", "", "Esc to resume"}, RgbOverlayTitle)
}

func (r *TerminalRenderer) drawGameOver(f engine.Frame, l layout) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score %d", f.Score),
		"",
		"Enter to continue   Ctrl+R play again",
	}
	r.drawBox(l, lines, RgbGameOver)
}

// drawBox draws centered lines on a panel, the first line is the title
func (r *TerminalRenderer) drawBox(l layout, lines []string, titleColor tcell.Color) {
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	width += 4
	if width > l.cols {
		width = l.cols
	}
	height := len(lines) + 2

	x0 := (l.cols - width) / 2
	y0 := constants.StatusBarRows + (l.playRows()-height)/2
	if y0 < constants.StatusBarRows {
		y0 = constants.StatusBarRows
	}

	panel := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayText)
	for y := y0; y < y0+height && y < l.hintRow(); y++ {
		fillRow(r.screen, y, x0, x0+width, panel)
	}
	for i, line := range lines {
		y := y0 + 1 + i
		if y >= l.hintRow() {
			break
		}
		style := panel
		if i == 0 {
			style = panel.Foreground(titleColor).Bold(true)
		}
		lx := x0 + (width-runewidth.StringWidth(line))/2
		drawString(r.screen, lx, y, x0+width, line, style)
	}
}

// drawDebugPanel lists metrics in the top-right corner of the play area
func (r *TerminalRenderer) drawDebugPanel(l layout) {
	r.mu.Lock()
	reg := r.registry
	r.mu.Unlock()
	if reg == nil {
		return
	}

	x0 := l.cols - debugPanelWidth
	if x0 < 0 {
		x0 = 0
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDebugText)
	for i, line := range reg.Lines() {
		y := constants.StatusBarRows + i
		if y >= l.hintRow() {
			break
		}
		fillRow(r.screen, y, x0, l.cols, style)
		drawString(r.screen, x0+1, y, l.cols, line, style)
	}
}
