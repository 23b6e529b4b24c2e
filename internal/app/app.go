//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	cfg     *Config
	mirror  *render.Mirror
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	observed bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided, already seeded simulation.
func New(sim core.Sim, cfg *Config, palette render.Palette) *Game {
	n := sim.Size().W
	g := &Game{
		sim:     sim,
		cfg:     cfg,
		mirror:  render.NewMirror(n, palette),
		painter: render.NewGridPainter(n),
		hud:     ui.NewHUD(sim, hudWidth),
		clock:   core.NewFixedStep(cfg.UpdateTime),
		seed:    cfg.Seed,
	}
	if obs, ok := sim.(core.Observable); ok {
		obs.Attach(g.mirror)
		g.observed = true
	}
	g.mirror.Sync(sim.Cells())
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation when the clock
// says a generation is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	status := "running"
	if g.paused {
		status = "paused  [n] step"
	}
	g.hud.Update(status)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.observed {
		g.mirror.Sync(g.sim.Cells())
	}
	g.painter.Blit(screen, g.mirror, g.cfg.Scale)
	g.hud.Draw(screen, g.sim.Size().W*g.cfg.Scale, g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.cfg.Scale + g.hud.Width(), s.H * g.cfg.Scale
}
