package life

import (
	"math"

	"lifegrid/internal/core"
)

// Life implements Conway's Game of Life on a square grid with hard edges.
type Life struct {
	cfg   Config
	n     int
	cur   *core.Grid
	nxt   *core.Grid
	gen   int
	sinks []core.Sink
}

// New returns a Life simulation with side n using the default configuration.
func New(n int) *Life {
	cfg := DefaultConfig()
	cfg.NumberOfCells = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg. The grid
// starts all dead; call Reset or Initialize to seed it.
func NewWithConfig(cfg Config) *Life {
	cfg.PercentageAlive = clampPercent(cfg.PercentageAlive)
	cur := core.NewGrid(cfg.NumberOfCells)
	return &Life{cfg: cfg, n: cur.N, cur: cur, nxt: core.NewGrid(cur.N)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.n, H: l.n} }

// Config returns the configuration the engine was built with.
func (l *Life) Config() Config { return l.cfg }

// Cells exposes the current grid values. Callers must treat the slice as
// read-only; it is replaced on every Step.
func (l *Life) Cells() []core.Cell { return l.cur.Cells() }

// Snapshot returns a copy of the current grid values.
func (l *Life) Snapshot() []core.Cell {
	return append([]core.Cell(nil), l.cur.Cells()...)
}

// Generation returns the number of steps since the last Initialize.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells.
func (l *Life) Population() int { return l.cur.Population() }

// Alive reports whether (row, col) is alive. Out-of-bounds positions are dead.
func (l *Life) Alive(row, col int) bool { return l.cur.At(row, col) == core.Alive }

// Attach registers a sink that is told about every cell change.
func (l *Life) Attach(s core.Sink) {
	if s == nil {
		return
	}
	l.sinks = append(l.sinks, s)
}

// Reset randomizes the board with the configured live percentage.
func (l *Life) Reset(seed int64) {
	l.Initialize(l.cfg.LiveProbability(), seed)
}

// Initialize seeds every cell alive with independent probability p and
// resets the generation counter. Every sink sees every cell once.
func (l *Life) Initialize(p float64, seed int64) {
	switch {
	case math.IsNaN(p) || p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	core.FillBernoulli(core.NewRNG(seed), l.cur.Cells(), p)
	l.gen = 0
	l.notifyAll()
}

// Set writes a single cell, notifying sinks if it changed. Out-of-bounds
// positions are ignored.
func (l *Life) Set(row, col int, state core.Cell) {
	if !l.cur.Contains(row, col) {
		return
	}
	if l.cur.At(row, col) == state {
		return
	}
	l.cur.Set(row, col, state)
	for _, s := range l.sinks {
		s.CellChanged(row, col, state)
	}
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.gen = 0
	l.notifyAll()
}

// Step advances the simulation by one generation and returns how many cells
// changed state. Sinks are notified only for changed cells, after the whole
// generation has been computed.
func (l *Life) Step() int {
	Next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++

	// nxt now holds the previous generation.
	prev, cells := l.nxt.Cells(), l.cur.Cells()
	changed := 0
	for idx, c := range cells {
		if c == prev[idx] {
			continue
		}
		changed++
		row, col := idx/l.n, idx%l.n
		for _, s := range l.sinks {
			s.CellChanged(row, col, c)
		}
	}
	l.generationDone()
	return changed
}

// Next writes the generation following src into dst. Every neighbour count
// reads src only, so dst must not alias src. Both grids must share a size.
func Next(dst, src *core.Grid) {
	n := src.N
	in, out := src.Cells(), dst.Cells()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			neighbors := liveNeighbors(src, row, col)
			alive := in[idx] == core.Alive
			out[idx] = core.Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[idx] = core.Alive
			}
		}
	}
}

// liveNeighbors counts live cells in the Moore neighbourhood of (row, col),
// clipped to the grid.
func liveNeighbors(g *core.Grid, row, col int) int {
	n := g.N
	cells := g.Cells()
	minR, maxR := max(0, row-1), min(n-1, row+1)
	minC, maxC := max(0, col-1), min(n-1, col+1)
	count := 0
	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if cells[r*n+c] == core.Alive {
				count++
			}
		}
	}
	return count
}

// Parameters describes the engine configuration and progress.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("n", "Cells per side", l.n),
				core.FloatParam("percent", "Percentage alive", l.cfg.PercentageAlive),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				core.DurationParam("update", "Update time", l.cfg.UpdateTime),
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}

func (l *Life) notifyAll() {
	if len(l.sinks) == 0 {
		return
	}
	for idx, c := range l.cur.Cells() {
		row, col := idx/l.n, idx%l.n
		for _, s := range l.sinks {
			s.CellChanged(row, col, c)
		}
	}
	l.generationDone()
}

func (l *Life) generationDone() {
	var pop int
	counted := false
	for _, s := range l.sinks {
		obs, ok := s.(core.GenerationObserver)
		if !ok {
			continue
		}
		if !counted {
			pop = l.Population()
			counted = true
		}
		obs.GenerationDone(l.gen, pop)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
