// Package term renders a simulation into a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
)

// Screen is a sink that paints every cell as two terminal columns and a
// status line below the grid.
type Screen struct {
	screen tcell.Screen
	n      int
	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// NewScreen wraps an initialised tcell screen for an n×n grid.
func NewScreen(s tcell.Screen, n int, alive, dead tcell.Color) *Screen {
	return &Screen{
		screen: s,
		n:      n,
		alive:  tcell.StyleDefault.Background(alive).Foreground(dead),
		dead:   tcell.StyleDefault.Background(dead).Foreground(alive),
		status: tcell.StyleDefault,
	}
}

// CellChanged repaints the terminal cells for (row, col). Nothing is shown
// until the generation completes.
func (s *Screen) CellChanged(row, col int, state core.Cell) {
	style := s.dead
	if state == core.Alive {
		style = s.alive
	}
	s.screen.SetContent(col*2, row, ' ', nil, style)
	s.screen.SetContent(col*2+1, row, ' ', nil, style)
}

// GenerationDone writes the status line and flushes the frame.
func (s *Screen) GenerationDone(generation, population int) {
	line := fmt.Sprintf("gen %-6d pop %-6d  [q] quit", generation, population)
	width, _ := s.screen.Size()
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		s.screen.SetContent(x, s.n, r, nil, s.status)
	}
	s.screen.Show()
}

// Color converts an 8-bit RGB triple into a tcell colour.
func Color(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
