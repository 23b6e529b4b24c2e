//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a Mirror's pixels into an image and draws it scaled.
type GridPainter struct {
	n   int
	img *ebiten.Image
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{n: n, img: ebiten.NewImage(max(n, 1), max(n, 1))}
}

// Blit uploads the mirror pixels into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, m *Mirror, scale int) {
	if gp.n == 0 || m.Side() != gp.n {
		return
	}
	gp.img.WritePixels(m.Pixels())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
