package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(MetricScore)
	b := r.Ints.Get(MetricScore)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("value = %d, want 3", b.Load())
	}
	if !r.Ints.Has(MetricScore) || r.Ints.Has(MetricMisses) {
		t.Error("Has reports wrong membership")
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(MetricTicks).Store(42)
	r.Floats.Get(MetricDifficulty).Store(1.15)
	r.Bools.Get(MetricPaused).Store(true)
	r.Strings.Get(MetricPhase).Store("Running")

	want := []string{
		"difficulty.multiplier=1.15",
		"engine.ticks=42",
		"game.paused=true",
		"game.phase=Running",
	}
	got := r.Lines()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount = %d, want 4", r.TotalCount())
	}
}

func TestAtomicFloatConcurrentAdd(t *testing.T) {
	var f AtomicFloat
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Add(0.5)
			}
		}()
	}
	wg.Wait()
	if got := f.Load(); got != 400 {
		t.Errorf("Load() = %v, want 400", got)
	}
}

func TestAtomicStringTruncatesRunes(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should load empty")
	}
	long := strings.Repeat("ㄅ", MaxStringLen+5)
	s.Store(long)
	if got := []rune(s.Load()); len(got) != MaxStringLen {
		t.Errorf("stored %d runes, want %d", len(got), MaxStringLen)
	}
	s.Store("default")
	if s.Load() != "default" {
		t.Errorf("Load() = %q", s.Load())
	}
}
