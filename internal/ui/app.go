// Package ui hosts the polar pixel editor in a Gio window.
package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/tau/internal/editor"
	"github.com/OpenTraceLab/tau/pkg/gridconf"
	"github.com/OpenTraceLab/tau/pkg/polar"
	"github.com/OpenTraceLab/tau/pkg/raster"
)

// Heights of the bars around the canvas, in dp.
const (
	toolbarHeight = 48
	statusHeight  = 28
)

// backdrop fills canvas pixels outside the grid.
var backdrop = polar.Opaque(34, 37, 49)

// App drives the editor window.
type App struct {
	window   *app.Window
	theme    *material.Theme
	gvTheme  *theme.Theme
	explorer *explorer.Explorer
	log      *slog.Logger
	ops      op.Ops

	editor  *editor.Editor
	palette *editor.Palette
	surface *raster.Surface

	paletteMenu    *menu.DropdownMenu
	paletteMenuBtn widget.Clickable
	swatchClicks   []widget.Clickable
	exportBtn      widget.Clickable
	paletteIcon    *widget.Icon
	exportIcon     *widget.Icon

	status  string
	notices chan string // messages from background exports
}

// New builds the editor state for cfg and binds it to window.
func New(window *app.Window, cfg *gridconf.Config, logger *slog.Logger) (*App, error) {
	grid, err := polar.NewGrid(cfg.Grid, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	palette := editor.NewPalette(cfg.Color, cfg.Palette)

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette = material.Palette{
		Bg:         color.NRGBA{R: 245, G: 246, B: 252, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}

	a := &App{
		window:       window,
		theme:        th,
		gvTheme:      theme.NewTheme("", nil, true),
		explorer:     explorer.NewExplorer(window),
		log:          logger,
		editor:       editor.New(grid, palette, logger),
		palette:      palette,
		surface:      raster.NewSurface(cfg.Width, cfg.Height),
		swatchClicks: make([]widget.Clickable, len(cfg.Palette)),
		notices:      make(chan string, 4),
	}
	a.surface.Clear(backdrop)
	a.paletteMenu = a.buildPaletteMenu()
	a.paletteIcon = a.loadIcon(icons.ImagePalette, "palette")
	a.exportIcon = a.loadIcon(icons.ContentSave, "export")
	a.Logf("%d sectors x %d rings of %gpx, origin %s",
		cfg.Grid.RadialDivisions, cfg.Grid.RingLength, cfg.Grid.PixelLength, cfg.Grid.Origin)
	return a, nil
}

// Run processes window events until the window is closed. Every frame is
// composited from scratch and another frame is requested straight away, so
// the canvas redraws once per display refresh.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.drainNotices()
			a.handleKeys(gtx)
			a.layout(gtx)
			gtx.Execute(op.InvalidateCmd{})
			ev.Frame(gtx.Ops)
		}
	}
}

// Logf records a status message and mirrors it to the structured log.
func (a *App) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.status = fmt.Sprintf("[%s] %s", time.Now().Format(time.TimeOnly), msg)
	a.log.Info(msg)
	a.invalidate()
}

func (a *App) drainNotices() {
	for {
		select {
		case msg := <-a.notices:
			a.Logf("%s", msg)
		default:
			return
		}
	}
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

func (a *App) loadIcon(data []byte, name string) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		a.log.Warn("failed to load icon", "icon", name, "err", err)
		return nil
	}
	return icon
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "1"}, key.Filter{Name: "2"}, key.Filter{Name: "3"},
			key.Filter{Name: "4"}, key.Filter{Name: "5"}, key.Filter{Name: "6"},
			key.Filter{Name: "7"}, key.Filter{Name: "8"}, key.Filter{Name: "9"},
			key.Filter{Name: key.NameEscape},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		if ke.Name == key.NameEscape {
			a.window.Perform(system.ActionClose)
			continue
		}
		a.selectSwatch(int(ke.Name[0] - '1'))
	}
}

func (a *App) selectSwatch(i int) {
	if a.palette.Select(i) {
		a.Logf("color %s", a.palette.CurrentColor())
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Center.Layout(gtx, a.layoutCanvas)
		}),
		layout.Rigid(a.layoutStatus),
	)
}
