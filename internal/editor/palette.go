package editor

import "github.com/OpenTraceLab/tau/pkg/polar"

// ColorSource supplies the color used by the next paint command.
type ColorSource interface {
	CurrentColor() polar.Color
}

// Palette is a ColorSource backed by a list of swatches plus a free color.
type Palette struct {
	swatches []polar.Color
	current  polar.Color
	selected int // -1 when current was set directly
}

// NewPalette starts with initial selected. initial need not be a swatch.
func NewPalette(initial polar.Color, swatches []polar.Color) *Palette {
	p := &Palette{
		swatches: append([]polar.Color(nil), swatches...),
		current:  initial,
		selected: -1,
	}
	for i, c := range p.swatches {
		if c == initial {
			p.selected = i
			break
		}
	}
	return p
}

func (p *Palette) CurrentColor() polar.Color { return p.current }

// Swatches returns a copy of the swatch list.
func (p *Palette) Swatches() []polar.Color {
	return append([]polar.Color(nil), p.swatches...)
}

// Selected is the index of the active swatch, or -1.
func (p *Palette) Selected() int { return p.selected }

// Select activates swatch i. It reports false if i is not a swatch.
func (p *Palette) Select(i int) bool {
	if i < 0 || i >= len(p.swatches) {
		return false
	}
	p.selected = i
	p.current = p.swatches[i]
	return true
}

// SetColor makes c the paint color without touching the swatches.
func (p *Palette) SetColor(c polar.Color) {
	p.current = c
	p.selected = -1
}
