package life

import (
	"math"
	"testing"
	"time"
)

func TestFromMap(t *testing.T) {
	def := DefaultConfig()
	tests := []struct {
		name string
		in   map[string]string
		want Config
	}{
		{"nil", nil, def},
		{"all keys", map[string]string{"n": "20", "percent": "40", "update": "250ms", "seed": "9"},
			Config{NumberOfCells: 20, PercentageAlive: 40, UpdateTime: 250 * time.Millisecond, Seed: 9}},
		{"bad size keeps default", map[string]string{"n": "-4"}, def},
		{"garbage keeps default", map[string]string{"n": "x", "update": "soon"}, def},
		{"percent clamps high", map[string]string{"percent": "150"},
			Config{NumberOfCells: def.NumberOfCells, PercentageAlive: 100, UpdateTime: def.UpdateTime, Seed: def.Seed}},
		{"percent clamps low", map[string]string{"percent": "-1"},
			Config{NumberOfCells: def.NumberOfCells, PercentageAlive: 0, UpdateTime: def.UpdateTime, Seed: def.Seed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromMap(tt.in); got != tt.want {
				t.Fatalf("FromMap = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestLiveProbability(t *testing.T) {
	cases := map[float64]float64{0: 0, 25: 0.25, 100: 1, 250: 1, -10: 0, math.NaN(): 0}
	for percent, want := range cases {
		got := Config{PercentageAlive: percent}.LiveProbability()
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("LiveProbability(%v) = %v, expected %v", percent, got, want)
		}
	}
}

func TestNewWithConfigClampsPercentage(t *testing.T) {
	life := NewWithConfig(Config{NumberOfCells: 4, PercentageAlive: 400})
	if got := life.Config().PercentageAlive; got != 100 {
		t.Fatalf("percentage = %v, expected clamp to 100", got)
	}
	life.Reset(1)
	if life.Population() != 16 {
		t.Fatalf("population = %d, expected full grid", life.Population())
	}
}
