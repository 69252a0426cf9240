package raster

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/tau/pkg/polar"
)

var (
	even = polar.Opaque(76, 76, 76)
	odd  = polar.Opaque(85, 85, 85)
	sky  = polar.RGBA(1, 2, 3, 4)
)

func newGrid(t *testing.T) *polar.Grid {
	t.Helper()
	g, err := polar.NewGrid(polar.DefaultConfig(), 800, 800)
	require.NoError(t, err)
	return g
}

func newSurface(g *polar.Grid) *Surface {
	w, h := g.Size()
	s := NewSurface(w, h)
	s.Clear(sky)
	return s
}

func TestPatternColor(t *testing.T) {
	tests := []struct {
		index int
		want  polar.Color
	}{
		{0, even},  // ring 0 sector 0
		{1, odd},   // ring 0 sector 1
		{15, odd},  // ring 0 sector 15
		{16, odd},  // ring 1 sector 0
		{17, even}, // ring 1 sector 1
		{32, even}, // ring 2 sector 0
	}
	for _, tt := range tests {
		if got := PatternColor(tt.index, 16); got != tt.want {
			t.Fatalf("PatternColor(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestDarkenClampsAtZero(t *testing.T) {
	assert.Equal(t, polar.Opaque(51, 51, 51), Darken(even, HighlightStep))
	assert.Equal(t, polar.Opaque(60, 60, 60), Darken(odd, HighlightStep))
	assert.Equal(t, polar.Opaque(0, 5, 0), Darken(polar.RGBA(10, 30, 0, 12), HighlightStep))

	c := even
	for i := 0; i < 10; i++ {
		c = Darken(c, HighlightStep)
	}
	assert.Equal(t, polar.Opaque(0, 0, 0), c)
}

func TestCompositeCheckerboard(t *testing.T) {
	g := newGrid(t)
	s := newSurface(g)
	s.Render(g, NoHighlight)

	// cell 0 is left of center, cell 16 one ring further out
	require.Equal(t, 0, g.CellIndexAt(388, 400))
	require.Equal(t, 16, g.CellIndexAt(375, 400))
	assert.Equal(t, even, s.At(388, 400))
	assert.Equal(t, odd, s.At(375, 400))
}

func TestCompositeScenario(t *testing.T) {
	g := newGrid(t)
	red := polar.RGBA(255, 0, 0, 255)
	g.PaintCell(0, red)

	s := newSurface(g)
	s.Render(g, NoHighlight)

	assert.Equal(t, red, s.At(388, 400))
	// cell 12, above center, still shows the pattern
	assert.Equal(t, 12, g.CellIndexAt(400, 388))
	assert.Equal(t, even, s.At(400, 388))
	// beyond the last ring nothing is written
	assert.Equal(t, sky, s.At(0, 0))
	assert.Equal(t, sky, s.At(799, 799))
	assert.Equal(t, sky, s.At(400, 10))
}

func TestCompositeHighlight(t *testing.T) {
	g := newGrid(t)
	g.PaintCell(17, polar.RGBA(200, 10, 100, 128))
	s := newSurface(g)

	s.Render(g, Cursor(0))
	assert.Equal(t, polar.Opaque(51, 51, 51), s.At(388, 400))
	assert.Equal(t, odd, s.At(375, 400))

	s.Render(g, Cursor(16))
	assert.Equal(t, even, s.At(388, 400))
	assert.Equal(t, polar.Opaque(60, 60, 60), s.At(375, 400))

	x, y := g.CellCenter(1, 1)
	s.Render(g, Cursor(17))
	assert.Equal(t, polar.Opaque(175, 0, 75), s.At(int(x), int(y)))
}

func TestCompositeHighlightOutsideGrid(t *testing.T) {
	g := newGrid(t)
	s := newSurface(g)
	s.Render(g, Cursor(g.CellIndexAt(0, 0)))
	assert.Equal(t, sky, s.At(0, 0))
	assert.Equal(t, even, s.At(388, 400))
}

func TestCompositeKeepsPaintAcrossFrames(t *testing.T) {
	g := newGrid(t)
	blue := polar.Opaque(0, 0, 255)
	g.PaintCell(40, blue)
	s := newSurface(g)
	for i := 0; i < 3; i++ {
		s.Render(g, Cursor(40))
	}
	c, ok := g.ColorOf(40)
	require.True(t, ok)
	assert.Equal(t, blue, c)
}

func TestCompositeBufferMismatchPanics(t *testing.T) {
	g := newGrid(t)
	assert.Panics(t, func() {
		Composite(make([]byte, 800*800*4-1), 800, 800, g, NoHighlight)
	})
	assert.Panics(t, func() {
		Composite(make([]byte, 16), -2, -2, g, NoHighlight)
	})
}

func TestWritePNGUpscales(t *testing.T) {
	g, err := polar.NewGrid(polar.GridConfig{RadialDivisions: 4, RingLength: 2, PixelLength: 4, Origin: polar.OriginCentered}, 16, 16)
	require.NoError(t, err)
	s := newSurface(g)
	s.Render(g, NoHighlight)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, s.Image(), 3))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

type closeRecorder struct {
	bytes.Buffer
	closed int
	err    error
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.err
}

func TestExportPNGReportsClose(t *testing.T) {
	g, err := polar.NewGrid(polar.GridConfig{RadialDivisions: 4, RingLength: 2, PixelLength: 4, Origin: polar.OriginCentered}, 16, 16)
	require.NoError(t, err)
	s := newSurface(g)
	s.Render(g, NoHighlight)

	ok := &closeRecorder{}
	require.NoError(t, ExportPNG(ok, s.Image(), 1))
	assert.Equal(t, 1, ok.closed)
	_, err = png.Decode(&ok.Buffer)
	require.NoError(t, err)

	flushErr := errors.New("disk full")
	failing := &closeRecorder{err: flushErr}
	err = ExportPNG(failing, s.Image(), 1)
	assert.ErrorIs(t, err, flushErr)
	assert.Equal(t, 1, failing.closed)
}
