// Package raster composites a polar grid onto an RGBA pixel buffer.
//
// Each pixel takes the color of the cell under it: the painted color if the
// cell has one, otherwise a two-tone checkerboard that alternates per ring
// and per sector. The cell under the cursor is darkened on top. Pixels whose
// cell lies beyond the last ring are never written, so callers clear the
// buffer before the first frame.
package raster
