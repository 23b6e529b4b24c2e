package life

import "testing"

func runUntilRepeat(l *Life, limit int) (period, gen int, ok bool) {
	h := NewHistory()
	h.Observe(l.Generation(), l.Cells())
	for i := 0; i < limit; i++ {
		l.Step()
		if period, ok := h.Observe(l.Generation(), l.Cells()); ok {
			return period, l.Generation(), true
		}
	}
	return 0, l.Generation(), false
}

func TestHistoryDetectsPeriods(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		period  int
	}{
		{"block", Block, 1},
		{"blinker", Blinker, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			life := New(8)
			life.PlaceCentered(tt.pattern)
			period, _, ok := runUntilRepeat(life, 10)
			if !ok {
				t.Fatal("no repeat detected")
			}
			if period != tt.period {
				t.Fatalf("period = %d, expected %d", period, tt.period)
			}
		})
	}
}

func TestHistoryGliderDiesAtWall(t *testing.T) {
	life := New(8)
	life.Place(Glider, 0, 0)
	_, _, ok := runUntilRepeat(life, 200)
	if !ok {
		t.Fatal("glider on a bounded grid should settle")
	}
}

func TestPatternLookup(t *testing.T) {
	for _, name := range PatternNames() {
		if _, err := LookupPattern(name); err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
	}
	if _, err := LookupPattern("spaceship"); err == nil {
		t.Fatal("expected unknown pattern error")
	}
	if rows, cols := Glider.Extent(); rows != 3 || cols != 3 {
		t.Fatalf("glider extent = %dx%d", rows, cols)
	}
}
