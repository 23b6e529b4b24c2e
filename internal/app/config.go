package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
)

var (
	ErrCells   = errors.New("number of cells must be positive")
	ErrPercent = errors.New("percentage alive must be within [0,100]")
	ErrUpdate  = errors.New("update time must not be negative")
	ErrDisplay = errors.New("scale and tps must be positive")
)

// PatternRandom seeds the grid with the configured live percentage.
const PatternRandom = "random"

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim        string
	Cells      int
	Percent    float64
	UpdateTime time.Duration
	Seed       int64
	Pattern    string

	AliveColor string
	DeadColor  string

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:        "life",
		Cells:      def.NumberOfCells,
		Percent:    def.PercentageAlive,
		UpdateTime: def.UpdateTime,
		Seed:       def.Seed,
		Pattern:    PatternRandom,
		AliveColor: "#ffffff",
		DeadColor:  "#000000",
		Scale:      8,
		TPS:        60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Cells, "cells", c.Cells, "cells per side of the square grid")
	fs.Float64Var(&c.Percent, "percent", c.Percent, "percentage of cells alive after a reset (0-100)")
	fs.DurationVar(&c.UpdateTime, "update", c.UpdateTime, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random, block, blinker or glider")
	fs.StringVar(&c.AliveColor, "alive", c.AliveColor, "live cell colour (#rrggbb)")
	fs.StringVar(&c.DeadColor, "dead", c.DeadColor, "dead cell colour (#rrggbb)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the window loop")
}

// Validate rejects configurations that cannot be simulated or displayed.
func (c *Config) Validate() error {
	if c.Cells <= 0 {
		return fmt.Errorf("cells=%d: %w", c.Cells, ErrCells)
	}
	if math.IsNaN(c.Percent) || c.Percent < 0 || c.Percent > 100 {
		return fmt.Errorf("percent=%v: %w", c.Percent, ErrPercent)
	}
	if c.UpdateTime < 0 {
		return fmt.Errorf("update=%v: %w", c.UpdateTime, ErrUpdate)
	}
	if c.Scale <= 0 || c.TPS <= 0 {
		return fmt.Errorf("scale=%d tps=%d: %w", c.Scale, c.TPS, ErrDisplay)
	}
	if c.Pattern != PatternRandom {
		if _, err := life.LookupPattern(c.Pattern); err != nil {
			return err
		}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// SimOptions renders the simulation-related fields as a factory map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"n":       strconv.Itoa(c.Cells),
		"percent": strconv.FormatFloat(c.Percent, 'f', -1, 64),
		"update":  c.UpdateTime.String(),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}

// LifeConfig converts the flags into an engine configuration.
func (c *Config) LifeConfig() life.Config {
	return life.Config{
		NumberOfCells:   c.Cells,
		PercentageAlive: c.Percent,
		UpdateTime:      c.UpdateTime,
		Seed:            c.Seed,
	}
}

// Palette parses the configured colours.
func (c *Config) Palette() (render.Palette, error) {
	alive, err := render.ParseHexColor(c.AliveColor)
	if err != nil {
		return render.Palette{}, fmt.Errorf("alive: %w", err)
	}
	dead, err := render.ParseHexColor(c.DeadColor)
	if err != nil {
		return render.Palette{}, fmt.Errorf("dead: %w", err)
	}
	return render.Palette{Alive: alive, Dead: dead}, nil
}

type patternPlacer interface {
	PlaceCentered(p life.Pattern)
}

// SeedWorld prepares the simulation's first generation: a random fill or a
// centred pattern.
func (c *Config) SeedWorld(sim core.Sim) error {
	if c.Pattern == PatternRandom || c.Pattern == "" {
		sim.Reset(c.Seed)
		return nil
	}
	p, err := life.LookupPattern(c.Pattern)
	if err != nil {
		return err
	}
	placer, ok := sim.(patternPlacer)
	if !ok {
		return fmt.Errorf("sim %q does not support patterns", sim.Name())
	}
	placer.PlaceCentered(p)
	return nil
}

// RGB splits a colour into its 8-bit channels.
func RGB(c color.RGBA) (r, g, b uint8) { return c.R, c.G, c.B }
