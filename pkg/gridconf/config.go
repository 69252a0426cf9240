// Package gridconf loads the editor's startup configuration: the grid shape,
// the canvas size and the color palette.
package gridconf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/OpenTraceLab/tau/pkg/colorspec"
	"github.com/OpenTraceLab/tau/pkg/polar"
)

// ErrUnknownKey is returned for a configuration entry the editor does not know.
var ErrUnknownKey = errors.New("unknown config key")

// Config is everything fixed at editor startup.
type Config struct {
	Grid    polar.GridConfig
	Width   int
	Height  int
	Color   polar.Color   // initial paint color
	Palette []polar.Color // swatches offered by the toolbar
}

// Default returns the built-in configuration: a 16x10 grid of 25px rings on
// an 800x800 canvas, painting in white.
func Default() *Config {
	return &Config{
		Grid:    polar.DefaultConfig(),
		Width:   800,
		Height:  800,
		Color:   polar.White,
		Palette: defaultPalette(),
	}
}

func defaultPalette() []polar.Color {
	names := []string{"white", "black", "red", "orange", "yellow", "lime", "cyan", "blue", "magenta"}
	palette := make([]polar.Color, len(names))
	for i, name := range names {
		palette[i] = colorspec.MustParse(name)
	}
	return palette
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("APPDATA"); dir != "" {
		return filepath.Join(dir, "tau", "config.sexp"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tau", "config.sexp"), nil
}

// LoadDefault reads the file at DefaultPath, falling back to Default when it
// does not exist. The returned path is empty when defaults were used.
func LoadDefault() (*Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// LoadFile reads a configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load reads a (tau ...) configuration. Entries that are left out keep their
// default value.
func Load(r io.Reader) (*Config, error) {
	nodes, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("expected a single (tau ...) expression, got %d", len(nodes))
	}
	root, ok := nodes[0].(*List)
	if !ok || root.Head() != "tau" {
		return nil, fmt.Errorf("line %d: expected (tau ...)", nodes[0].Line())
	}

	cfg := Default()
	for _, n := range root.Args() {
		entry, ok := n.(*List)
		if !ok {
			return nil, fmt.Errorf("line %d: expected a list, got %s", n.Line(), n)
		}
		if err := cfg.apply(entry); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the grid and canvas.
func (c *Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", polar.ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

func (c *Config) apply(entry *List) error {
	args := entry.Args()
	switch entry.Head() {
	case "grid":
		for _, n := range args {
			sub, ok := n.(*List)
			if !ok {
				return fmt.Errorf("line %d: expected a grid setting, got %s", n.Line(), n)
			}
			if err := c.applyGrid(sub); err != nil {
				return err
			}
		}
	case "canvas":
		dims, err := intArgs(entry, 1, 2)
		if err != nil {
			return err
		}
		c.Width = dims[0]
		c.Height = dims[0]
		if len(dims) == 2 {
			c.Height = dims[1]
		}
	case "color":
		colors, err := colorArgs(entry, 1, 1)
		if err != nil {
			return err
		}
		c.Color = colors[0]
	case "palette":
		colors, err := colorArgs(entry, 1, -1)
		if err != nil {
			return err
		}
		c.Palette = colors
	default:
		return fmt.Errorf("line %d: %w %q", entry.Line(), ErrUnknownKey, entry.Head())
	}
	return nil
}

func (c *Config) applyGrid(entry *List) error {
	switch entry.Head() {
	case "divisions":
		v, err := intArgs(entry, 1, 1)
		if err != nil {
			return err
		}
		c.Grid.RadialDivisions = v[0]
	case "rings":
		v, err := intArgs(entry, 1, 1)
		if err != nil {
			return err
		}
		c.Grid.RingLength = v[0]
	case "pixel_length":
		atoms, err := atomArgs(entry, 1, 1)
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(atoms[0].Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: pixel_length: %w", entry.Line(), err)
		}
		c.Grid.PixelLength = v
	case "origin":
		atoms, err := atomArgs(entry, 1, 1)
		if err != nil {
			return err
		}
		o, err := polar.ParseOrigin(atoms[0].Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", entry.Line(), err)
		}
		c.Grid.Origin = o
	default:
		return fmt.Errorf("line %d: %w grid.%s", entry.Line(), ErrUnknownKey, entry.Head())
	}
	return nil
}

// atomArgs returns the arguments of entry as atoms, checking there are
// between min and max of them (max < 0 means no limit).
func atomArgs(entry *List, min, max int) ([]*Atom, error) {
	args := entry.Args()
	if len(args) < min || (max >= 0 && len(args) > max) {
		return nil, fmt.Errorf("line %d: %s takes %s, got %d", entry.Line(), entry.Head(), argCount(min, max), len(args))
	}
	atoms := make([]*Atom, len(args))
	for i, n := range args {
		a, ok := n.(*Atom)
		if !ok {
			return nil, fmt.Errorf("line %d: %s: expected a value, got %s", n.Line(), entry.Head(), n)
		}
		atoms[i] = a
	}
	return atoms, nil
}

func intArgs(entry *List, min, max int) ([]int, error) {
	atoms, err := atomArgs(entry, min, max)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(atoms))
	for i, a := range atoms {
		v, err := strconv.Atoi(a.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", a.Line(), entry.Head(), err)
		}
		out[i] = v
	}
	return out, nil
}

func colorArgs(entry *List, min, max int) ([]polar.Color, error) {
	atoms, err := atomArgs(entry, min, max)
	if err != nil {
		return nil, err
	}
	out := make([]polar.Color, len(atoms))
	for i, a := range atoms {
		c, err := colorspec.Parse(a.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", a.Line(), entry.Head(), err)
		}
		out[i] = c
	}
	return out, nil
}

func argCount(min, max int) string {
	switch {
	case max < 0:
		return fmt.Sprintf("at least %d value(s)", min)
	case min == max:
		return fmt.Sprintf("%d value(s)", min)
	}
	return fmt.Sprintf("%d to %d values", min, max)
}
