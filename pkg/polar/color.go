package polar

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with 8-bit channels. It is always stored by value.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a Color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Opaque builds a fully opaque Color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts to the image/color representation used by Gio.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var (
	// White is the editor's initial paint color.
	White = Opaque(255, 255, 255)
	Black = Opaque(0, 0, 0)
)
