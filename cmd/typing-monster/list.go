package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ScaratP/TypingMonster/achievement"
	"github.com/ScaratP/TypingMonster/theme"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	selectedColor = color.New(color.FgGreen, color.Bold)
	dimColor      = color.New(color.FgHiBlack)
	warnColor     = color.New(color.FgYellow)
)

// printCatalog lists themes, levels and difficulties, marking the current selection
func printCatalog(w io.Writer, c *theme.Catalog, s *theme.Settings) {
	headerColor.Fprintln(w, "Themes")
	for _, id := range c.ThemeIDs() {
		th, _ := c.Theme(id)
		var flags []string
		if th.CaseInsensitive {
			flags = append(flags, "case-insensitive")
		}
		if th.FirstCharOnlyMatch {
			flags = append(flags, "first-char")
		}
		if len(th.Aliases) > 0 {
			flags = append(flags, fmt.Sprintf("%d aliases", len(th.Aliases)))
		}
		line := fmt.Sprintf("%-10s %-20s %3d chars", id, th.Name, len(th.Pool))
		printEntry(w, id == s.ThemeID(), line, strings.Join(flags, ", "))
	}

	fmt.Fprintln(w)
	headerColor.Fprintln(w, "Levels")
	for _, id := range c.LevelIDs() {
		l, _ := c.Level(id)
		line := fmt.Sprintf("%-10d %-20s speed %.2f  monsters %d  size %.0f", id, l.Name, l.Speed, l.Count, l.Size)
		printEntry(w, id == s.LevelID(), line, "")
	}

	fmt.Fprintln(w)
	headerColor.Fprintln(w, "Difficulties")
	for _, id := range c.DifficultyIDs() {
		d, _ := c.Difficulty(id)
		line := fmt.Sprintf("%-10s %-20s speed x%.2f  score x%.2f  +%.0f%% every 30s",
			id, d.Name, d.SpeedMultiplier, d.ScoreFactor, d.DifficultyIncrease*100)
		printEntry(w, id == s.DifficultyID(), line, "")
	}
}

func printEntry(w io.Writer, selected bool, line, note string) {
	if selected {
		selectedColor.Fprintf(w, "* %s", line)
	} else {
		fmt.Fprintf(w, "  %s", line)
	}
	if note != "" {
		dimColor.Fprintf(w, "  (%s)", note)
	}
	fmt.Fprintln(w)
}

// printSummary reports the last session and the unlocked achievements after the screen closes
func printSummary(w io.Writer, t *achievement.Tracker) {
	stats := t.Stats()
	headerColor.Fprintf(w, "Last score %d", stats.Score)
	fmt.Fprintf(w, "  defeated %d  max combo %d  %d chars/min\n",
		stats.TotalDefeated, stats.MaxCombo, stats.TypingSpeed)

	unlocked := t.Unlocked()
	fmt.Fprintf(w, "Achievements %d/%d\n", len(unlocked), t.TotalCount())
	titles := make(map[string]string)
	for _, a := range achievement.Catalog() {
		titles[a.ID] = a.Title
	}
	for _, id := range unlocked {
		selectedColor.Fprintf(w, "  ★ %s\n", titles[id])
	}
}

// warn prints a non-fatal start-up problem to stderr
func warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "warning: "+format+"\n", args...)
}
