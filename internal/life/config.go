package life

import (
	"math"
	"strconv"
	"time"
)

// Config holds parameters for the Game of Life engine.
type Config struct {
	// NumberOfCells is the side length of the square grid.
	NumberOfCells int
	// PercentageAlive is the expected share of live cells after a reset, in
	// percent (0-100).
	PercentageAlive float64
	// UpdateTime is the interval between generations when a clock drives
	// the engine.
	UpdateTime time.Duration
	Seed       int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		NumberOfCells:   64,
		PercentageAlive: 25,
		UpdateTime:      100 * time.Millisecond,
		Seed:            42,
	}
}

// LiveProbability converts PercentageAlive into a probability in [0,1].
func (c Config) LiveProbability() float64 {
	return clampPercent(c.PercentageAlive) / 100
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// FromMap populates a Config from a string map. Unparsable or non-positive
// sizes keep the default; the percentage is clamped to [0,100].
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.NumberOfCells = parsed
		}
	}
	if v, ok := cfg["percent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.PercentageAlive = clampPercent(parsed)
		}
	}
	if v, ok := cfg["update"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.UpdateTime = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
