package life

import (
	"fmt"
	"sort"

	"lifegrid/internal/core"
)

// Pattern lists the live cells of a shape as (row, col) offsets from its
// top-left corner.
type Pattern [][2]int

var (
	// Glider travels one cell down and right every four generations.
	Glider = Pattern{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	// Blinker is a period-2 oscillator, horizontal phase.
	Blinker = Pattern{{0, 0}, {0, 1}, {0, 2}}
	// Block is the 2×2 still life.
	Block = Pattern{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
)

var patterns = map[string]Pattern{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
}

// PatternNames lists the named patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the pattern registered under name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	return p, nil
}

// Extent returns the height and width of the pattern's bounding box.
func (p Pattern) Extent() (rows, cols int) {
	for _, rc := range p {
		rows = max(rows, rc[0]+1)
		cols = max(cols, rc[1]+1)
	}
	return rows, cols
}

// Place stamps p with its top-left corner at (row, col). Cells falling
// outside the grid are dropped.
func (l *Life) Place(p Pattern, row, col int) {
	for _, rc := range p {
		l.Set(row+rc[0], col+rc[1], core.Alive)
	}
}

// PlaceCentered clears the grid and stamps p in its middle.
func (l *Life) PlaceCentered(p Pattern) {
	l.Clear()
	rows, cols := p.Extent()
	l.Place(p, (l.n-rows)/2, (l.n-cols)/2)
}
