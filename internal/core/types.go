package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() int
	Cells() []Cell
}

// Sink receives per-cell state changes. Implementations must not mutate
// the simulation they observe.
type Sink interface {
	CellChanged(row, col int, state Cell)
}

// GenerationObserver is implemented by sinks that want to know when a
// generation has been fully reported, e.g. to flush a frame.
type GenerationObserver interface {
	GenerationDone(generation, population int)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(row, col int, state Cell)

// CellChanged calls f(row, col, state).
func (f SinkFunc) CellChanged(row, col int, state Cell) { f(row, col, state) }

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Observable is implemented by sims that push cell changes to sinks.
type Observable interface {
	Attach(s Sink)
}
