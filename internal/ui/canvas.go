package ui

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// layoutCanvas feeds pointer events to the editor, composites a frame and
// draws it pixel for pixel.
func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: a.editor,
			Kinds:  pointer.Move | pointer.Drag | pointer.Enter | pointer.Leave | pointer.Press | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		x, y := float64(pe.Position.X), float64(pe.Position.Y)
		switch pe.Kind {
		case pointer.Move, pointer.Drag, pointer.Enter:
			a.editor.OnPointerMove(x, y)
		case pointer.Leave, pointer.Cancel:
			a.editor.OnPointerLeave()
		case pointer.Press:
			if pe.Buttons.Contain(pointer.ButtonPrimary) {
				a.editor.OnPointerDown(x, y)
			}
		}
	}

	a.editor.Frame(a.surface)

	size := a.surface.Image().Bounds().Size()
	img := paint.NewImageOp(a.surface.Image())
	img.Filter = paint.FilterNearest

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	event.Op(gtx.Ops, a.editor)
	pointer.CursorCrosshair.Add(gtx.Ops)
	area.Pop()

	return layout.Dimensions{Size: image.Pt(size.X, size.Y)}
}
