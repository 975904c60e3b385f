package achievement

import (
	"testing"
	"time"

	"github.com/ScaratP/TypingMonster/events"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func started(theme string, level int) events.GameEvent {
	return events.GameEvent{Type: events.EventGameStarted, Payload: &events.GameStartedPayload{ThemeID: theme, Level: level, Difficulty: "normal"}}
}

func completed(score int) events.GameEvent {
	return events.GameEvent{Type: events.EventMonsterCompleted, Payload: &events.MonsterCompletedPayload{Points: 1, Score: score}}
}

func key(hit bool) events.GameEvent {
	return events.GameEvent{Type: events.EventKeyTyped, Payload: &events.KeyTypedPayload{Char: 'x', Hit: hit}}
}

func miss() events.GameEvent {
	return events.GameEvent{Type: events.EventMiss, Payload: &events.MissPayload{Char: 'q', Expected: "x"}}
}

func TestTrackerFirstMonsterUnlocksOnce(t *testing.T) {
	var got []string
	tr := NewTracker(func(a Achievement, _ time.Time) { got = append(got, a.ID) })

	tr.HandleEvent(t0, started("default", 1))
	tr.HandleEvent(t0, completed(1))
	tr.HandleEvent(t0, completed(2))

	if len(got) != 1 || got[0] != "first_monster" {
		t.Fatalf("unlocks = %v, want [first_monster]", got)
	}
	if !tr.IsUnlocked("first_monster") || tr.UnlockedCount() != 1 {
		t.Error("first_monster not recorded")
	}

	// A new session does not re-unlock
	tr.HandleEvent(t0, started("default", 1))
	tr.HandleEvent(t0, completed(1))
	if len(got) != 1 {
		t.Errorf("unlocks after restart = %v", got)
	}
}

func TestTrackerCombosAndStreaks(t *testing.T) {
	tr := NewTracker(nil)
	tr.HandleEvent(t0, started("default", 1))

	for i := 1; i <= 5; i++ {
		tr.HandleEvent(t0, completed(i))
	}
	tr.HandleEvent(t0, miss())
	tr.HandleEvent(t0, completed(6))

	s := tr.Stats()
	if s.MaxCombo != 5 || s.CurrentCombo != 1 {
		t.Errorf("combo cur=%d max=%d, want 1/5", s.CurrentCombo, s.MaxCombo)
	}
	if s.NoMissStreak != 1 || s.MaxNoMissStreak != 5 {
		t.Errorf("streak cur=%d max=%d, want 1/5", s.NoMissStreak, s.MaxNoMissStreak)
	}
	if s.TotalDefeated != 6 || s.Score != 6 {
		t.Errorf("defeated=%d score=%d", s.TotalDefeated, s.Score)
	}
	if !tr.IsUnlocked("combo_5") || tr.IsUnlocked("combo_10") {
		t.Error("combo achievements wrong")
	}
}

func TestTrackerTypingSpeed(t *testing.T) {
	tr := NewTracker(nil)
	tr.HandleEvent(t0, started("default", 1))

	// 20 keys within the first second, speed not yet refreshed
	for i := 0; i < 20; i++ {
		tr.HandleEvent(t0.Add(time.Second), key(true))
	}
	if s := tr.Stats(); s.TypingSpeed != 0 || s.TotalCharsTyped != 20 {
		t.Fatalf("speed=%d chars=%d before interval", s.TypingSpeed, s.TotalCharsTyped)
	}

	// 21 chars after 30s = 42 per minute
	tr.HandleEvent(t0.Add(30*time.Second), key(false))
	s := tr.Stats()
	if s.TypingSpeed != 42 {
		t.Errorf("TypingSpeed = %d, want 42", s.TypingSpeed)
	}
	if !tr.IsUnlocked("speed_30") || tr.IsUnlocked("speed_50") {
		t.Errorf("speed unlocks = %v", tr.Unlocked())
	}
}

func TestTrackerPlayTimeRefresh(t *testing.T) {
	tr := NewTracker(nil)

	// No session, no play time
	tr.Refresh(t0.Add(time.Hour))
	if tr.IsUnlocked("time_1min") {
		t.Fatal("play time counted without a session")
	}

	tr.HandleEvent(t0, started("default", 1))
	tr.Refresh(t0.Add(59 * time.Second))
	if tr.IsUnlocked("time_1min") {
		t.Fatal("time_1min before 60s")
	}
	tr.Refresh(t0.Add(61 * time.Second))
	if !tr.IsUnlocked("time_1min") {
		t.Error("time_1min not unlocked after 61s")
	}

	tr.HandleEvent(t0.Add(62*time.Second), events.GameEvent{Type: events.EventGameEnded, Payload: &events.GameEndedPayload{Score: 0}})
	tr.Refresh(t0.Add(10 * time.Minute))
	if tr.IsUnlocked("time_3min") {
		t.Error("play time advanced after the session ended")
	}
}

func TestTrackerThemesAndLevels(t *testing.T) {
	tr := NewTracker(nil)
	tr.HandleEvent(t0, started("default", 3))
	for _, id := range []string{"numbers", "english", "mixed", "compound", "english"} {
		tr.HandleEvent(t0, events.GameEvent{Type: events.EventThemeUsed, Payload: &events.ThemeUsedPayload{ThemeID: id}})
	}

	s := tr.Stats()
	if len(s.UsedThemes) != ThemeCount {
		t.Errorf("UsedThemes = %v", s.UsedThemes)
	}
	if !tr.IsUnlocked("all_themes") || !tr.IsUnlocked("level_3") || tr.IsUnlocked("level_5") {
		t.Errorf("unlocked = %v", tr.Unlocked())
	}

	// Stats copies are detached
	s.UsedThemes["extra"] = struct{}{}
	if _, ok := tr.Stats().UsedThemes["extra"]; ok {
		t.Error("Stats shares its theme set")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement %s", a.ID)
		}
		seen[a.ID] = true
	}
	if tr := NewTracker(nil); tr.TotalCount() != len(seen) {
		t.Errorf("TotalCount = %d, want %d", tr.TotalCount(), len(seen))
	}
}
