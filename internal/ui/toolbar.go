package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/anthonynsimon/bild/clone"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

func (a *App) buildPaletteMenu() *menu.DropdownMenu {
	swatches := a.palette.Swatches()
	opts := make([]menu.MenuOption, 0, len(swatches))
	for i, c := range swatches {
		idx := i
		swatch := c
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.selectSwatch(idx)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, fmt.Sprintf("%d  %s", idx+1, swatch))
				if a.palette.Selected() == idx {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return drawSwatch(gtx, swatch, gtx.Dp(unit.Dp(14)), false)
					}),
					layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
					layout.Rigid(lbl.Layout),
				)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(200)
	return drop
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(toolbarHeight))
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y

	children := []layout.FlexChild{
		layout.Rigid(a.layoutPaletteButton),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return drawSwatch(gtx, a.palette.CurrentColor(), gtx.Dp(unit.Dp(28)), true)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
	}
	for i, c := range a.palette.Swatches() {
		idx, swatch := i, c
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				clk := &a.swatchClicks[idx]
				for clk.Clicked(gtx) {
					a.selectSwatch(idx)
				}
				return clk.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return drawSwatch(gtx, swatch, gtx.Dp(unit.Dp(20)), a.palette.Selected() == idx)
				})
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		)
	}
	children = append(children,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: image.Pt(gtx.Constraints.Min.X, 0)}
		}),
		layout.Rigid(a.layoutExportButton),
	)

	return layout.Inset{Left: unit.Dp(8), Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (a *App) layoutPaletteButton(gtx layout.Context) layout.Dimensions {
	if a.paletteMenuBtn.Clicked(gtx) {
		a.paletteMenu.ToggleVisibility(gtx)
	}
	var dims layout.Dimensions
	if a.paletteIcon != nil {
		btn := material.IconButton(a.theme, &a.paletteMenuBtn, a.paletteIcon, "Palette")
		btn.Size = unit.Dp(20)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		dims = btn.Layout(gtx)
	} else {
		dims = material.Button(a.theme, &a.paletteMenuBtn, "Palette").Layout(gtx)
	}
	a.paletteMenu.Layout(gtx, a.gvTheme)
	return dims
}

func (a *App) layoutExportButton(gtx layout.Context) layout.Dimensions {
	if a.exportBtn.Clicked(gtx) {
		a.exportPNG()
	}
	if a.exportIcon != nil {
		btn := material.IconButton(a.theme, &a.exportBtn, a.exportIcon, "Export PNG")
		btn.Size = unit.Dp(20)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	}
	return material.Button(a.theme, &a.exportBtn, "Export PNG").Layout(gtx)
}

// exportPNG saves the last composited frame. The file dialog blocks, so the
// snapshot is taken here and written from a goroutine.
func (a *App) exportPNG() {
	snapshot := clone.AsRGBA(a.surface.Image())
	go func() {
		w, err := a.explorer.CreateFile("tau.png")
		if err != nil {
			if err != explorer.ErrUserDecline {
				a.notices <- fmt.Sprintf("export failed: %v", err)
			}
			return
		}
		if err := raster.ExportPNG(w, snapshot, 1); err != nil {
			a.notices <- fmt.Sprintf("export failed: %v", err)
			return
		}
		a.notices <- "exported tau.png"
	}()
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(statusHeight))
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y

	cell := "no cell"
	if idx, ok := a.editor.HighlightIndex(); ok {
		grid := a.editor.Grid()
		if grid.Contains(idx) {
			cell = fmt.Sprintf("cell %d  ring %d  sector %d", idx, grid.Ring(idx), grid.Sector(idx))
		} else {
			cell = "outside grid"
		}
	}

	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Caption(a.theme, cell).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Caption(a.theme, a.status)
				lbl.Alignment = text.End
				return lbl.Layout(gtx)
			}),
		)
	})
}

// drawSwatch paints a size x size square of c, outlined when selected.
func drawSwatch(gtx layout.Context, c polar.Color, size int, selected bool) layout.Dimensions {
	rect := image.Rect(0, 0, size, size)
	if selected {
		paint.FillShape(gtx.Ops, color.NRGBA{R: 80, G: 120, B: 255, A: 255}, clip.Rect(rect).Op())
		rect = rect.Inset(2)
	} else {
		paint.FillShape(gtx.Ops, color.NRGBA{R: 120, G: 120, B: 120, A: 255}, clip.Rect(rect).Op())
		rect = rect.Inset(1)
	}
	paint.FillShape(gtx.Ops, c.NRGBA(), clip.Rect(rect).Op())
	return layout.Dimensions{Size: image.Pt(size, size)}
}
