package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/tau/internal/editor"
	"github.com/OpenTraceLab/tau/pkg/colorspec"
	"github.com/OpenTraceLab/tau/pkg/gridconf"
	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

type renderOptions struct {
	out        string
	paint      []string // INDEX=COLOR
	paintAt    []string // X,Y=COLOR
	cursor     string   // X,Y
	highlight  int
	background string
	scale      int
}

var renderOpts = renderOptions{highlight: -1}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Composite a grid to a PNG without opening a window",
	Long: `Render paints cells, composites one frame and writes it as PNG.

Cells are painted either by index (--paint 17=#ff0000) or by clicking a
raster point (--paint-at 375,400=red). Paints are applied in the order
given, index paints first. The cursor highlight comes from --cursor (a
raster point) or --highlight (a cell index).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runRender(cfg, renderOpts)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.out, "out", "o", "", "output PNG file")
	f.StringArrayVar(&renderOpts.paint, "paint", nil, "paint a cell by index, INDEX=COLOR (repeatable)")
	f.StringArrayVar(&renderOpts.paintAt, "paint-at", nil, "paint the cell under a raster point, X,Y=COLOR (repeatable)")
	f.StringVar(&renderOpts.cursor, "cursor", "", "highlight the cell under a raster point, X,Y")
	f.IntVar(&renderOpts.highlight, "highlight", -1, "highlight a cell by index")
	f.StringVar(&renderOpts.background, "background", "transparent", "color of pixels outside the grid")
	f.IntVar(&renderOpts.scale, "scale", 1, "integer upscale factor")
	renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cfg *gridconf.Config, opts renderOptions) error {
	if opts.cursor != "" && opts.highlight >= 0 {
		return fmt.Errorf("--cursor and --highlight are mutually exclusive")
	}
	if opts.scale < 1 {
		return fmt.Errorf("--scale must be at least 1, got %d", opts.scale)
	}
	bg, err := colorspec.Parse(opts.background)
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}

	grid, err := polar.NewGrid(cfg.Grid, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	palette := editor.NewPalette(cfg.Color, cfg.Palette)
	ed := editor.New(grid, palette, slog.Default())

	for _, p := range opts.paint {
		lhs, c, err := splitAssignment(p)
		if err != nil {
			return fmt.Errorf("--paint %q: %w", p, err)
		}
		index, err := strconv.Atoi(lhs)
		if err != nil {
			return fmt.Errorf("--paint %q: bad index: %w", p, err)
		}
		if !grid.Contains(index) {
			slog.Warn("cell outside grid ignored", "index", index, "cells", grid.CellCount())
		}
		grid.PaintCell(index, c)
	}
	for _, p := range opts.paintAt {
		lhs, c, err := splitAssignment(p)
		if err != nil {
			return fmt.Errorf("--paint-at %q: %w", p, err)
		}
		x, y, err := parsePoint(lhs)
		if err != nil {
			return fmt.Errorf("--paint-at %q: %w", p, err)
		}
		palette.SetColor(c)
		ed.OnPointerDown(x, y)
	}

	surface := raster.NewSurface(cfg.Width, cfg.Height)
	surface.Clear(bg)
	switch {
	case opts.cursor != "":
		x, y, err := parsePoint(opts.cursor)
		if err != nil {
			return fmt.Errorf("--cursor: %w", err)
		}
		ed.OnPointerMove(x, y)
		ed.Frame(surface)
	case opts.highlight >= 0:
		surface.Render(grid, raster.Cursor(opts.highlight))
	default:
		ed.OnPointerLeave()
		ed.Frame(surface)
	}

	if err := raster.SavePNG(opts.out, surface.Image(), opts.scale); err != nil {
		return err
	}
	slog.Info("rendered", "out", opts.out, "painted", grid.Painted(), "scale", opts.scale)
	return nil
}

// splitAssignment splits "LHS=COLOR".
func splitAssignment(s string) (string, polar.Color, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return "", polar.Color{}, fmt.Errorf("expected LHS=COLOR")
	}
	c, err := colorspec.Parse(rhs)
	if err != nil {
		return "", polar.Color{}, err
	}
	return strings.TrimSpace(lhs), c, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y: %w", err)
	}
	return x, y, nil
}
