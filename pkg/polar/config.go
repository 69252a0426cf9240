package polar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned when a grid configuration cannot describe a grid.
var ErrInvalidConfig = errors.New("invalid grid config")

// Origin selects where sector boundaries start.
type Origin int

const (
	// OriginCentered centers a sector on angle 0.
	OriginCentered Origin = iota
	// OriginZero rotates boundaries by half a sector so a boundary lies on angle 0.
	OriginZero
)

func (o Origin) String() string {
	switch o {
	case OriginCentered:
		return "centered"
	case OriginZero:
		return "zero"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// ParseOrigin accepts "centered" or "zero" (case-insensitive).
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centered", "center":
		return OriginCentered, nil
	case "zero":
		return OriginZero, nil
	}
	return OriginCentered, fmt.Errorf("%w: unknown origin %q", ErrInvalidConfig, s)
}

// GridConfig describes the shape of a polar grid. It is fixed once a Grid
// has been built from it.
type GridConfig struct {
	RadialDivisions int     // sectors per ring
	RingLength      int     // number of rings
	PixelLength     float64 // radial thickness of a ring, in raster pixels
	Origin          Origin
}

// DefaultConfig is the grid the editor starts with.
func DefaultConfig() GridConfig {
	return GridConfig{
		RadialDivisions: 16,
		RingLength:      10,
		PixelLength:     25,
		Origin:          OriginCentered,
	}
}

// CellCount is RadialDivisions * RingLength.
func (c GridConfig) CellCount() int {
	return c.RadialDivisions * c.RingLength
}

// Validate reports whether the configuration describes a non-empty grid.
func (c GridConfig) Validate() error {
	if c.RadialDivisions <= 0 {
		return fmt.Errorf("%w: radial divisions must be positive, got %d", ErrInvalidConfig, c.RadialDivisions)
	}
	if c.RingLength <= 0 {
		return fmt.Errorf("%w: ring length must be positive, got %d", ErrInvalidConfig, c.RingLength)
	}
	if !(c.PixelLength > 0) {
		return fmt.Errorf("%w: pixel length must be positive, got %g", ErrInvalidConfig, c.PixelLength)
	}
	if c.Origin != OriginCentered && c.Origin != OriginZero {
		return fmt.Errorf("%w: unknown origin %d", ErrInvalidConfig, int(c.Origin))
	}
	return nil
}

// Extent is the outer radius of the last ring in raster pixels. Rings are
// centered on multiples of PixelLength, so it lies half a ring inside
// RingLength * PixelLength.
func (c GridConfig) Extent() float64 {
	return (float64(c.RingLength) - 0.5) * c.PixelLength
}
