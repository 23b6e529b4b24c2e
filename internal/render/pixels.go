package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lifegrid/internal/core"
)

// Palette holds the colours used for live and dead cells.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette is white on black.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead:  color.RGBA{A: 255},
	}
}

// Mirror keeps an RGBA pixel buffer in sync with a simulation grid by
// listening to cell changes. Pixel (x, y) maps to cell (row=y, col=x).
type Mirror struct {
	n       int
	buf     []byte
	palette Palette
}

// NewMirror allocates a mirror for an n×n grid with every cell dead.
func NewMirror(n int, p Palette) *Mirror {
	if n < 0 {
		n = 0
	}
	m := &Mirror{n: n, buf: make([]byte, 4*n*n), palette: p}
	fillBinaryRGBA(m.buf, make([]core.Cell, n*n), p.Alive, p.Dead)
	return m
}

// CellChanged repaints a single pixel.
func (m *Mirror) CellChanged(row, col int, state core.Cell) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return
	}
	c := m.palette.Dead
	if state == core.Alive {
		c = m.palette.Alive
	}
	base := (row*m.n + col) * 4
	m.buf[base+0] = c.R
	m.buf[base+1] = c.G
	m.buf[base+2] = c.B
	m.buf[base+3] = c.A
}

// Sync repaints the whole buffer from a full snapshot.
func (m *Mirror) Sync(cells []core.Cell) {
	if len(cells) != m.n*m.n {
		return
	}
	fillBinaryRGBA(m.buf, cells, m.palette.Alive, m.palette.Dead)
}

// Pixels exposes the RGBA buffer.
func (m *Mirror) Pixels() []byte { return m.buf }

// Side returns the grid side length the mirror was built for.
func (m *Mirror) Side() int { return m.n }

// fillBinaryRGBA converts binary cell data into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
