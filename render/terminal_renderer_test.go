package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ScaratP/TypingMonster/components"
	"github.com/ScaratP/TypingMonster/constants"
	"github.com/ScaratP/TypingMonster/engine"
	"github.com/ScaratP/TypingMonster/status"
	"github.com/ScaratP/TypingMonster/systems"
)

const (
	testCols = 80
	testRows = 24
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	// Init resets the size, so resize afterwards
	screen.SetSize(testCols, testRows)
	t.Cleanup(screen.Fini)
	return screen
}

func runningFrame(monsters ...components.Monster) engine.Frame {
	bounds := WorldBounds(testCols, testRows)
	target := systems.NoTarget
	if len(monsters) > 0 {
		target = 0
	}
	return engine.Frame{
		Monsters:             monsters,
		Target:               target,
		Score:                12,
		ThemeID:              "english",
		Level:                2,
		Difficulty:           "normal",
		DifficultyMultiplier: 1.15,
		Phase:                components.PhaseRunning,
		Hint:                 "correct, keep going",
		Bounds:               bounds,
		Floor:                bounds.Floor(constants.BottomBarHeight),
	}
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenText(screen tcell.Screen) string {
	_, rows := screen.Size()
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.WriteString(rowText(screen, y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestWorldBounds(t *testing.T) {
	b := WorldBounds(80, 24)
	if b.Width != 800 {
		t.Errorf("Width = %v, want 800", b.Width)
	}
	if b.Height != 23*constants.WorldUnitsPerRow {
		t.Errorf("Height = %v, want %v", b.Height, 23*constants.WorldUnitsPerRow)
	}

	tiny := WorldBounds(0, 0)
	if tiny.Width <= 0 || tiny.Height <= 0 {
		t.Errorf("degenerate screen gave non-positive bounds %+v", tiny)
	}
}

func TestLayoutMapping(t *testing.T) {
	l := newLayout(testCols, testRows, WorldBounds(testCols, testRows))

	if got := l.column(400); got != 40 {
		t.Errorf("column(400) = %d, want 40", got)
	}
	if got := l.row(0); got != constants.StatusBarRows {
		t.Errorf("row(0) = %d, want %d", got, constants.StatusBarRows)
	}
	if got := l.row(-20); l.inPlayArea(got) {
		t.Errorf("row(-20) = %d should be above the play area", got)
	}
	if l.inPlayArea(l.hintRow()) {
		t.Errorf("hint row must not be part of the play area")
	}
}

func TestMonsterTextAndTargetMarker(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	m := components.Monster{X: 400, Y: 260, Radius: 20, Active: true, Typed: []string{"x"}, Remaining: []string{"a", "b"}}
	r.Render(runningFrame(m))

	// row = 1 + floor(260/575*23) = 11; width 3 with plate gives start column 38
	y := 11
	want := map[int]rune{39: 'x', 40: 'a', 41: 'b'}
	for x, ch := range want {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc != ch {
			t.Errorf("cell (%d,%d) = %q, want %q", x, y, mainc, ch)
		}
	}

	_, _, typedStyle, _ := screen.GetContent(39, y)
	if fg, _, _ := typedStyle.Decompose(); fg != RgbMonsterTyped {
		t.Errorf("typed text foreground = %v, want typed color", fg)
	}
	_, _, headStyle, _ := screen.GetContent(40, y)
	if fg, bg, _ := headStyle.Decompose(); fg != RgbNextChar || bg != RgbTargetBody {
		t.Errorf("next character style fg=%v bg=%v, want hint on target plate", fg, bg)
	}

	marker, _, _, _ := screen.GetContent(40, y-1)
	if marker != constants.TargetMarker {
		t.Errorf("marker = %q, want %q", marker, constants.TargetMarker)
	}
}

func TestNonTargetHasNoMarker(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	f := runningFrame(components.Monster{X: 400, Y: 260, Radius: 20, Active: true, Remaining: []string{"a"}})
	f.Target = systems.NoTarget
	r.Render(f)

	if strings.ContainsRune(screenText(screen), constants.TargetMarker) {
		t.Errorf("marker drawn without a target")
	}
	_, _, style, _ := screen.GetContent(40, 11)
	if _, bg, _ := style.Decompose(); bg != RgbMonsterBody {
		t.Errorf("plate background = %v, want monster body color", bg)
	}
}

func TestWideAndCombiningTokens(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	m := components.Monster{X: 400, Y: 260, Radius: 20, Active: true, Remaining: []string{"ㄉ\u0301", "ㄅ"}}
	r.Render(runningFrame(m))

	// width 4 with plate gives start column 37
	mainc, combining, _, width := screen.GetContent(38, 11)
	if mainc != 'ㄉ' {
		t.Fatalf("first token = %q, want 'ㄉ'", mainc)
	}
	if len(combining) != 1 || combining[0] != '\u0301' {
		t.Errorf("combining = %q, want tone mark", combining)
	}
	if width != 2 {
		t.Errorf("width = %d, want 2", width)
	}
	if next, _, _, _ := screen.GetContent(40, 11); next != 'ㄅ' {
		t.Errorf("second token = %q, want 'ㄅ' after the wide cell", next)
	}
}

func TestOffscreenAndInactiveMonstersSkipped(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	above := components.Monster{X: 200, Y: -20, Radius: 20, Active: true, Remaining: []string{"q"}}
	dead := components.Monster{X: 600, Y: 260, Radius: 0, Active: false, Remaining: []string{"z"}}
	f := runningFrame(above, dead)
	f.Target = systems.NoTarget
	r.Render(f)

	text := screenText(screen)
	if strings.ContainsRune(text, 'q') || strings.ContainsRune(text, 'z') {
		t.Errorf("hidden monsters were drawn:\n%s", text)
	}
}

func TestStatusAndHintBars(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	r.Render(runningFrame())

	status := rowText(screen, 0)
	for _, want := range []string{"Score 12", "Theme english", "Level 2", "normal", "x1.15", "Running"} {
		if !strings.Contains(status, want) {
			t.Errorf("status bar %q missing %q", status, want)
		}
	}

	hint := rowText(screen, testRows-1)
	if !strings.Contains(hint, "correct, keep going") {
		t.Errorf("hint bar %q missing hint", hint)
	}

	// Floor sits one bottom-bar height above the world edge, just over the hint bar
	found := false
	for y := testRows - 3; y < testRows-1; y++ {
		if strings.Contains(rowText(screen, y), "───") {
			found = true
		}
	}
	if !found {
		t.Errorf("no floor line above the hint bar:\n%s", screenText(screen))
	}
}

func TestPhaseScreens(t *testing.T) {
	tests := []struct {
		name  string
		phase components.Phase
		want  []string
	}{
		{"start", components.PhaseNotStarted, []string{"TYPING MONSTER", "english", "Enter start"}},
		{"paused", components.PhasePaused, []string{"PAUSED", "Esc to resume"}},
		{"ended", components.PhaseEnded, []string{"GAME OVER", "Final score 12"}},
		{"running", components.PhaseRunning, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t)
			r := NewTerminalRenderer(screen)

			f := runningFrame()
			f.Phase = tt.phase
			f.Paused = tt.phase == components.PhasePaused
			r.Render(f)

			text := screenText(screen)
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("screen missing %q:\n%s", want, text)
				}
			}
			if tt.phase == components.PhaseRunning {
				for _, banned := range []string{"PAUSED", "GAME OVER", "TYPING MONSTER"} {
					if strings.Contains(text, banned) {
						t.Errorf("running screen shows %q", banned)
					}
				}
			}
		})
	}
}

func TestToastExpires(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.ShowToast("First Blood")
	r.Render(runningFrame())
	if hint := rowText(screen, testRows-1); !strings.Contains(hint, "First Blood") {
		t.Fatalf("toast not shown: %q", hint)
	}

	now = now.Add(constants.AchievementToastTimeout)
	r.Render(runningFrame())
	if hint := rowText(screen, testRows-1); strings.Contains(hint, "First Blood") {
		t.Errorf("toast still shown after timeout: %q", hint)
	}
}

func TestDebugPanel(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)

	reg := status.NewRegistry()
	reg.Ints.Get(status.MetricScore).Store(42)
	r.SetDebug(reg)
	r.Render(runningFrame())

	if text := screenText(screen); !strings.Contains(text, "game.score=42") {
		t.Errorf("debug panel missing metric:\n%s", text)
	}

	r.SetDebug(nil)
	r.Render(runningFrame())
	if text := screenText(screen); strings.Contains(text, "game.score=42") {
		t.Errorf("debug panel shown after disable")
	}
}

func TestTooSmallScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 5)
	if w, h := screen.Size(); w != 20 || h != 5 {
		t.Fatalf("screen size = %dx%d, want 20x5", w, h)
	}

	r := NewTerminalRenderer(screen)
	r.Render(runningFrame(components.Monster{X: 100, Y: 50, Radius: 20, Active: true, Remaining: []string{"a"}}))

	if text := rowText(screen, 0); !strings.Contains(text, "too small") {
		t.Errorf("row 0 = %q, want size warning", text)
	}
}
