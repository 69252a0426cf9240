package gridconf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/tau/pkg/colorspec"
	"github.com/OpenTraceLab/tau/pkg/polar"
)

const sampleConfig = `
; polar sketchpad
(tau
  (grid (divisions 24) (rings 8) (pixel_length 12.5) (origin zero))
  (canvas 640 480)
  (color #ff8800)
  (palette "#000" red "rgb(0, 255, 0)" "rgba(0, 0, 255, 128)"))
`

func TestLoad(t *testing.T) {
	cfg, err := Load(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := &Config{
		Grid: polar.GridConfig{
			RadialDivisions: 24,
			RingLength:      8,
			PixelLength:     12.5,
			Origin:          polar.OriginZero,
		},
		Width:  640,
		Height: 480,
		Color:  polar.Opaque(255, 136, 0),
		Palette: []polar.Color{
			polar.Opaque(0, 0, 0),
			polar.Opaque(255, 0, 0),
			polar.Opaque(0, 255, 0),
			polar.RGBA(0, 0, 255, 128),
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(strings.NewReader(`(tau (canvas 500))`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Width != 500 || cfg.Height != 500 {
		t.Fatalf("expected square 500 canvas, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Grid != def.Grid {
		t.Fatalf("grid changed: %+v", cfg.Grid)
	}
	if cfg.Color != polar.White {
		t.Fatalf("expected white paint color, got %v", cfg.Color)
	}
	if len(cfg.Palette) != len(def.Palette) {
		t.Fatalf("palette changed: %v", cfg.Palette)
	}
}

func TestDefaultPalette(t *testing.T) {
	want := []polar.Color{
		polar.White,
		polar.Black,
		polar.Opaque(255, 0, 0),
		polar.Opaque(255, 165, 0),
		polar.Opaque(255, 255, 0),
		polar.Opaque(0, 255, 0),
		polar.Opaque(0, 255, 255),
		polar.Opaque(0, 0, 255),
		polar.Opaque(255, 0, 255),
	}
	if diff := cmp.Diff(want, Default().Palette); diff != "" {
		t.Fatalf("default palette mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		is    error
	}{
		{"empty", ``, nil},
		{"wrong root", `(board (canvas 10))`, nil},
		{"two roots", `(tau) (tau)`, nil},
		{"unclosed", `(tau (canvas 10)`, nil},
		{"stray close", `(tau))`, nil},
		{"unknown key", `(tau (layers 3))`, ErrUnknownKey},
		{"unknown grid key", `(tau (grid (spokes 3)))`, ErrUnknownKey},
		{"bad number", `(tau (grid (rings ten)))`, nil},
		{"zero rings", `(tau (grid (rings 0)))`, polar.ErrInvalidConfig},
		{"negative canvas", `(tau (canvas -1 10))`, polar.ErrInvalidConfig},
		{"bad origin", `(tau (grid (origin north)))`, polar.ErrInvalidConfig},
		{"canvas arity", `(tau (canvas 1 2 3))`, nil},
		{"bad color", `(tau (color "rgb(300, 0, 0)"))`, colorspec.ErrChannelRange},
		{"empty palette", `(tau (palette))`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.sexp")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Grid.RadialDivisions != 24 {
		t.Fatalf("expected 24 divisions, got %d", cfg.Grid.RadialDivisions)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.sexp")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadDefaultWithoutFile(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())
	cfg, path, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if path != "" {
		t.Fatalf("expected no path, got %q", path)
	}
	if cfg.Width != 800 || cfg.Height != 800 {
		t.Fatalf("expected default canvas, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestParseNodes(t *testing.T) {
	nodes, err := Parse(strings.NewReader("(a \"b c\" (d)) ; trailing\n(e)"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(nodes))
	}
	if got := nodes[0].String(); got != `(a "b c" (d))` {
		t.Fatalf("unexpected first node %s", got)
	}
	if nodes[1].Line() != 2 {
		t.Fatalf("expected second node on line 2, got %d", nodes[1].Line())
	}
}
