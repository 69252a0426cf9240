// Package polar models a pixel grid laid out in rings and sectors around the
// center of a raster canvas.
//
// A cell is addressed by a single index, ring*RadialDivisions + sector. Raster
// points are mapped to cells by rounding the polar radius and angle to the
// nearest ring and sector, so every cell is centered on its nominal radius and
// angle.
package polar

import (
	"fmt"
	"math"
)

type cell struct {
	color   Color
	painted bool
}

// Grid owns the configuration and the per-cell colors of a polar grid drawn
// onto a Width x Height raster.
type Grid struct {
	config GridConfig
	width  int
	height int
	cells  []cell
}

// NewGrid builds an unpainted grid for a canvas of the given size.
func NewGrid(config GridConfig, width, height int) (*Grid, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	return &Grid{
		config: config,
		width:  width,
		height: height,
		cells:  make([]cell, config.CellCount()),
	}, nil
}

// Config returns the grid configuration.
func (g *Grid) Config() GridConfig { return g.config }

// Size returns the raster canvas size the grid is centered on.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// CellCount is the number of addressable cells.
func (g *Grid) CellCount() int { return len(g.cells) }

// Contains reports whether index addresses an existing cell.
func (g *Grid) Contains(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// Ring returns the ring part of a cell index.
func (g *Grid) Ring(index int) int { return index / g.config.RadialDivisions }

// Sector returns the sector part of a cell index.
func (g *Grid) Sector(index int) int { return index % g.config.RadialDivisions }

// Index combines a ring and sector into a cell index.
func (g *Grid) Index(ring, sector int) int {
	return ring*g.config.RadialDivisions + sector
}

func (g *Grid) sectorAngle() float64 {
	return 2 * math.Pi / float64(g.config.RadialDivisions)
}

func (g *Grid) angleOffset() float64 {
	if g.config.Origin == OriginCentered {
		return 0
	}
	return math.Pi / float64(g.config.RadialDivisions)
}

// CellIndexAt maps a raster coordinate to a cell index. Points beyond the
// last ring, and non-finite coordinates, yield CellCount; callers test the
// result with Contains.
func (g *Grid) CellIndexAt(rasterX, rasterY float64) int {
	// raster Y grows downward, polar Y upward
	x := rasterX - float64(g.width)/2
	y := float64(g.height)/2 - rasterY

	r := math.Hypot(x, y)
	// also rejects NaN and keeps huge radii away from the int conversion
	if !(r < g.config.Extent()) {
		return len(g.cells)
	}
	theta := math.Pi + math.Atan2(y, x) - g.angleOffset()

	n := g.config.RadialDivisions
	ring := roundHalfUp(r / g.config.PixelLength)
	sector := roundHalfUp(theta/g.sectorAngle()) % n
	if sector < 0 {
		sector += n
	}
	return ring*n + sector
}

// CellCenter returns the raster point at the nominal radius and angle of a
// cell. Every sector of ring 0 shares the canvas midpoint.
func (g *Grid) CellCenter(ring, sector int) (rasterX, rasterY float64) {
	r := float64(ring) * g.config.PixelLength
	angle := float64(sector)*g.sectorAngle() - math.Pi + g.angleOffset()
	x := r * math.Cos(angle)
	y := r * math.Sin(angle)
	return x + float64(g.width)/2, float64(g.height)/2 - y
}

// ColorOf returns the color painted at index. ok is false for unpainted or
// out of range cells.
func (g *Grid) ColorOf(index int) (c Color, ok bool) {
	if !g.Contains(index) {
		return Color{}, false
	}
	cl := g.cells[index]
	return cl.color, cl.painted
}

// PaintCell stores c at index. Indices outside the grid are ignored.
func (g *Grid) PaintCell(index int, c Color) {
	if !g.Contains(index) {
		return
	}
	g.cells[index] = cell{color: c, painted: true}
}

// Painted counts the painted cells.
func (g *Grid) Painted() int {
	n := 0
	for _, cl := range g.cells {
		if cl.painted {
			n++
		}
	}
	return n
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
