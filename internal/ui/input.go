package ui

import (
	"image"
	"math"

	"gioui.org/io/pointer"

	"github.com/OpenTraceLab/CirKit/pkg/interact"
	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// pointerKinds are the Gio events forwarded to the router.
const pointerKinds = pointer.Press | pointer.Release | pointer.Move | pointer.Drag | pointer.Scroll | pointer.Cancel

// toPointerEvent converts a Gio pointer event into the router's form.
// Touches act as the primary button.
func toPointerEvent(e pointer.Event) (interact.PointerEvent, bool) {
	out := interact.PointerEvent{
		Position: scene.Pt(float64(e.Position.X), float64(e.Position.Y)),
	}
	switch e.Kind {
	case pointer.Press:
		out.Kind = interact.Press
	case pointer.Release:
		out.Kind = interact.Release
	case pointer.Move:
		out.Kind = interact.Move
	case pointer.Drag:
		out.Kind = interact.Drag
	case pointer.Scroll:
		out.Kind = interact.Scroll
		out.Scroll = float64(e.Scroll.Y)
	case pointer.Cancel:
		out.Kind = interact.Cancel
	default:
		return out, false
	}

	if e.Buttons.Contain(pointer.ButtonPrimary) || e.Source == pointer.Touch {
		out.Buttons |= interact.ButtonPrimary
	}
	if e.Buttons.Contain(pointer.ButtonSecondary) {
		out.Buttons |= interact.ButtonSecondary
	}
	return out, true
}

func cursorFor(c interact.Cursor) pointer.Cursor {
	switch c {
	case interact.CursorPointer:
		return pointer.CursorPointer
	case interact.CursorGrab:
		return pointer.CursorGrab
	case interact.CursorGrabbing:
		return pointer.CursorGrabbing
	case interact.CursorCopy:
		return pointer.CursorCrosshair
	default:
		return pointer.CursorDefault
	}
}

// pixelRect snaps a layout region onto the pixel grid.
func pixelRect(r interact.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Min.X)), int(math.Round(r.Min.Y)),
		int(math.Round(r.Max.X)), int(math.Round(r.Max.Y)),
	)
}
