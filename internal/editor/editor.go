// Package editor turns pointer activity into paint commands on a polar grid
// and composites the grid, with the cell under the pointer highlighted, once
// per frame.
//
// An Editor is not safe for concurrent use. Pointer events and frames are
// expected to arrive from a single event loop, so a paint delivered before a
// frame is always visible in that frame.
package editor

import (
	"log/slog"

	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

// Point is a raster position.
type Point struct {
	X, Y float64
}

// Editor tracks the pointer over one polar grid.
type Editor struct {
	grid   *polar.Grid
	colors ColorSource
	log    *slog.Logger

	cursor    Point
	hasCursor bool
}

// New wires an editor to grid, painting with colors from colors.
func New(grid *polar.Grid, colors ColorSource, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{grid: grid, colors: colors, log: logger}
}

// Grid returns the edited grid.
func (e *Editor) Grid() *polar.Grid { return e.grid }

// OnPointerMove records the pointer position.
func (e *Editor) OnPointerMove(x, y float64) {
	e.cursor = Point{X: x, Y: y}
	e.hasCursor = true
}

// OnPointerLeave forgets the pointer; no cell is highlighted until it returns.
func (e *Editor) OnPointerLeave() {
	e.hasCursor = false
}

// OnPointerDown paints the cell at (x, y) with the current color. Points
// outside the grid are ignored.
func (e *Editor) OnPointerDown(x, y float64) {
	e.OnPointerMove(x, y)
	index := e.grid.CellIndexAt(x, y)
	if !e.grid.Contains(index) {
		e.log.Debug("paint outside grid", "x", x, "y", y, "index", index)
		return
	}
	c := e.CurrentColor()
	e.grid.PaintCell(index, c)
	e.log.Debug("paint", "index", index,
		"ring", e.grid.Ring(index), "sector", e.grid.Sector(index), "color", c.String())
}

// CurrentColor is the color the next paint command will use.
func (e *Editor) CurrentColor() polar.Color {
	return e.colors.CurrentColor()
}

// Cursor returns the last pointer position, ok is false after a leave.
func (e *Editor) Cursor() (p Point, ok bool) {
	return e.cursor, e.hasCursor
}

// HighlightIndex is the cell under the pointer. The index may lie outside the
// grid; the compositor skips it then.
func (e *Editor) HighlightIndex() (index int, ok bool) {
	if !e.hasCursor {
		return 0, false
	}
	return e.grid.CellIndexAt(e.cursor.X, e.cursor.Y), true
}

func (e *Editor) highlight() raster.Highlight {
	if i, ok := e.HighlightIndex(); ok {
		return raster.Cursor(i)
	}
	return raster.NoHighlight
}

// Frame composites the grid into surface.
func (e *Editor) Frame(surface *raster.Surface) {
	surface.Render(e.grid, e.highlight())
}

// FrameBuffer composites the grid into a raw width*height*4 RGBA buffer
// sized like the grid canvas.
func (e *Editor) FrameBuffer(buf []byte) {
	w, h := e.grid.Size()
	raster.Composite(buf, w, h, e.grid, e.highlight())
}
