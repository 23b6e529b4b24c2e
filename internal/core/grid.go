package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores a square N×N arena of cell values in row-major order.
type Grid struct {
	N    int
	data []Cell
}

// NewGrid allocates a grid with side n. A non-positive n yields an empty grid.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{N: n, data: make([]Cell, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.N + col }

// Contains reports whether (row, col) lies inside the grid. There is no
// wrapping: the grid has hard edges.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// At returns the cell at (row, col), or Dead when out of bounds.
func (g *Grid) At(row, col int) Cell {
	if !g.Contains(row, col) {
		return Dead
	}
	return g.data[g.Index(row, col)]
}

// Set writes the cell at (row, col) and reports whether the position was in
// bounds.
func (g *Grid) Set(row, col int, c Cell) bool {
	if !g.Contains(row, col) {
		return false
	}
	g.data[g.Index(row, col)] = c
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.data {
		if c == Alive {
			count++
		}
	}
	return count
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
