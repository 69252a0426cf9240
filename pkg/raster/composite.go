package raster

import (
	"fmt"

	"github.com/OpenTraceLab/tau/pkg/polar"
)

// Grid is the view of a polar grid the compositor reads from.
type Grid interface {
	Config() polar.GridConfig
	Contains(index int) bool
	CellIndexAt(rasterX, rasterY float64) int
	ColorOf(index int) (polar.Color, bool)
}

// Highlight selects the cell drawn darkened as the cursor.
type Highlight struct {
	Index int
	Valid bool
}

// NoHighlight draws no cursor.
var NoHighlight = Highlight{}

// Cursor highlights the cell at index.
func Cursor(index int) Highlight {
	return Highlight{Index: index, Valid: true}
}

// Pattern tones for unpainted cells.
const (
	PatternEven uint8 = 76
	PatternOdd  uint8 = 85

	// HighlightStep is subtracted from each RGB channel of the cursor cell.
	HighlightStep uint8 = 25
)

// PatternColor is the checkerboard color of an unpainted cell.
func PatternColor(index, radialDivisions int) polar.Color {
	ring := (index / radialDivisions) % 2
	if (index+ring)%2 == 0 {
		return polar.Opaque(PatternEven, PatternEven, PatternEven)
	}
	return polar.Opaque(PatternOdd, PatternOdd, PatternOdd)
}

// Darken lowers the RGB channels by amount, stopping at 0, and makes the
// color opaque.
func Darken(c polar.Color, amount uint8) polar.Color {
	return polar.Color{
		R: sub(c.R, amount),
		G: sub(c.G, amount),
		B: sub(c.B, amount),
		A: 255,
	}
}

func sub(v, amount uint8) uint8 {
	if v < amount {
		return 0
	}
	return v - amount
}

// Composite writes every in-grid pixel of buf, a width x height RGBA buffer
// with 4 bytes per pixel and no row padding. It panics if buf has the wrong
// length.
func Composite(buf []byte, width, height int, grid Grid, highlight Highlight) {
	if width < 0 || height < 0 || len(buf) != width*height*4 {
		panic(fmt.Sprintf("raster: buffer of %d bytes does not hold %dx%d pixels", len(buf), width, height))
	}
	divisions := grid.Config().RadialDivisions

	for py := 0; py < height; py++ {
		row := buf[py*width*4 : (py+1)*width*4]
		for px := 0; px < width; px++ {
			index := grid.CellIndexAt(float64(px), float64(py))
			if !grid.Contains(index) {
				continue
			}

			c, painted := grid.ColorOf(index)
			if !painted {
				c = PatternColor(index, divisions)
			}
			if highlight.Valid && index == highlight.Index {
				c = Darken(c, HighlightStep)
			}

			p := row[px*4 : px*4+4 : px*4+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}
