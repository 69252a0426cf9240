package raster

import (
	"image"

	"github.com/OpenTraceLab/tau/pkg/polar"
)

// Surface is a display buffer the size of the grid canvas.
type Surface struct {
	img *image.NRGBA
}

// NewSurface allocates a transparent width x height surface.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Clear fills the whole surface with c, including pixels outside the grid.
func (s *Surface) Clear(c polar.Color) {
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Render composites grid onto the surface.
func (s *Surface) Render(grid Grid, highlight Highlight) {
	b := s.img.Bounds()
	Composite(s.img.Pix, b.Dx(), b.Dy(), grid, highlight)
}

// At returns the color at a raster pixel.
func (s *Surface) At(x, y int) polar.Color {
	c := s.img.NRGBAAt(x, y)
	return polar.RGBA(c.R, c.G, c.B, c.A)
}

// Image exposes the backing image for display or export.
func (s *Surface) Image() *image.NRGBA { return s.img }
