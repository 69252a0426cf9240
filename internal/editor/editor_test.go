package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

var (
	red   = polar.Opaque(255, 0, 0)
	green = polar.Opaque(0, 255, 0)
	bg    = polar.Opaque(9, 9, 9)
)

func newEditor(t *testing.T) (*Editor, *Palette) {
	t.Helper()
	g, err := polar.NewGrid(polar.DefaultConfig(), 800, 800)
	require.NoError(t, err)
	p := NewPalette(polar.White, []polar.Color{red, green})
	return New(g, p, nil), p
}

func TestPointerDownPaintsCurrentColor(t *testing.T) {
	ed, p := newEditor(t)

	ed.OnPointerDown(388, 400)
	c, ok := ed.Grid().ColorOf(0)
	require.True(t, ok, "cell 0 must be paintable")
	assert.Equal(t, polar.White, c)

	require.True(t, p.Select(0))
	ed.OnPointerDown(375, 400)
	c, _ = ed.Grid().ColorOf(16)
	assert.Equal(t, red, c)

	// a color change does not repaint earlier cells
	c, _ = ed.Grid().ColorOf(0)
	assert.Equal(t, polar.White, c)
}

func TestPointerDownOutsideGrid(t *testing.T) {
	ed, _ := newEditor(t)
	ed.OnPointerDown(0, 0)
	ed.OnPointerDown(799, 3)
	assert.Equal(t, 0, ed.Grid().Painted())
	assert.Equal(t, 160, ed.Grid().CellCount())
}

func TestCursorTracking(t *testing.T) {
	ed, _ := newEditor(t)

	_, ok := ed.HighlightIndex()
	assert.False(t, ok)

	ed.OnPointerMove(412, 400)
	idx, ok := ed.HighlightIndex()
	require.True(t, ok)
	assert.Equal(t, 8, idx)

	pt, ok := ed.Cursor()
	require.True(t, ok)
	assert.Equal(t, Point{X: 412, Y: 400}, pt)

	ed.OnPointerLeave()
	_, ok = ed.HighlightIndex()
	assert.False(t, ok)
	_, ok = ed.Cursor()
	assert.False(t, ok)
}

func TestFrameShowsPaintAndHighlight(t *testing.T) {
	ed, p := newEditor(t)
	s := raster.NewSurface(800, 800)
	s.Clear(bg)

	p.SetColor(green)
	ed.OnPointerDown(388, 400)
	ed.OnPointerMove(375, 400)
	ed.Frame(s)

	assert.Equal(t, green, s.At(388, 400))
	assert.Equal(t, polar.Opaque(60, 60, 60), s.At(375, 400))
	assert.Equal(t, bg, s.At(0, 0))

	// the painted cell under the cursor is its own color darkened
	ed.OnPointerMove(389, 401)
	ed.Frame(s)
	assert.Equal(t, polar.Opaque(0, 230, 0), s.At(388, 400))
	assert.Equal(t, polar.Opaque(85, 85, 85), s.At(375, 400))

	ed.OnPointerLeave()
	ed.Frame(s)
	assert.Equal(t, green, s.At(388, 400))
}

func TestFrameBuffer(t *testing.T) {
	ed, _ := newEditor(t)
	buf := make([]byte, 800*800*4)
	ed.OnPointerDown(412, 400)
	ed.OnPointerLeave()
	ed.FrameBuffer(buf)

	i := (400*800 + 412) * 4
	assert.Equal(t, []byte{255, 255, 255, 255}, buf[i:i+4])
	assert.Equal(t, []byte{0, 0, 0, 0}, buf[0:4])

	assert.Panics(t, func() { ed.FrameBuffer(make([]byte, 10)) })
}

func TestPalette(t *testing.T) {
	p := NewPalette(green, []polar.Color{red, green})
	assert.Equal(t, 1, p.Selected())
	assert.Equal(t, green, p.CurrentColor())

	assert.False(t, p.Select(2))
	assert.False(t, p.Select(-1))
	assert.Equal(t, green, p.CurrentColor())

	p.SetColor(polar.Black)
	assert.Equal(t, -1, p.Selected())
	assert.Equal(t, polar.Black, p.CurrentColor())

	sw := p.Swatches()
	sw[0] = polar.White
	assert.Equal(t, red, p.Swatches()[0])
}
